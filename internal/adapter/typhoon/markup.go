package typhoon

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// forecastTag wraps forecast blocks inside point responses. Everything under
// it is skipped.
const forecastTag = "forecastmodel"

// record holds the text of each field tag seen inside one record element.
type record map[string]string

// extractRecords scans markup for elements named recordTag and collects the
// text of the listed field tags found anywhere beneath each one. Tag names
// are matched case-insensitively. Repeated field tags within a record are
// joined by a space.
func extractRecords(r io.Reader, recordTag string, fields ...string) ([]record, error) {
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	var (
		records   []record
		current   record
		recDepth  int
		field     string
		text      strings.Builder
		skipDepth int
	)

	z := html.NewTokenizer(r)
	z.AllowCDATA(true)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("tokenize markup: %w", z.Err())

		case html.StartTagToken:
			name := tagName(z)
			if skipDepth > 0 || name == forecastTag {
				skipDepth++
				continue
			}
			switch {
			case name == recordTag && current == nil:
				current = record{}
				recDepth = 1
			case current != nil:
				recDepth++
				if field == "" && wanted[name] {
					field = name
					text.Reset()
				}
			}

		case html.EndTagToken:
			name := tagName(z)
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			if current == nil {
				continue
			}
			if field != "" && name == field {
				appendField(current, field, text.String())
				field = ""
			}
			recDepth--
			if recDepth == 0 || name == recordTag {
				records = append(records, current)
				current = nil
				field = ""
			}

		case html.SelfClosingTagToken:
			name := tagName(z)
			if skipDepth > 0 || current == nil || !wanted[name] {
				continue
			}
			appendField(current, name, "")

		case html.TextToken:
			if skipDepth == 0 && field != "" {
				text.Write(z.Text())
			}
		}
	}
}

func tagName(z *html.Tokenizer) string {
	name, _ := z.TagName()
	return string(name)
}

func appendField(rec record, field, value string) {
	value = strings.TrimSpace(value)
	prev, seen := rec[field]
	switch {
	case !seen || prev == "":
		rec[field] = value
	case value != "":
		rec[field] = prev + " " + value
	}
}
