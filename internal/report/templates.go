package report

import (
	"html/template"
	"strconv"
)

var funcs = template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"km":  func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
}

var templates = template.Must(template.New("report").Funcs(funcs).Parse(`
{{define "pointHead"}}<tr><td>Radius7 (avg)</td><td>Power</td><td>Strength</td><td>Wind speed</td><td>Move speed</td><td>Pressure</td><td>Latitude</td><td>Longitude</td><td>Time</td><td>Storm ID</td></tr>{{end}}

{{define "pointRow"}}<tr><td>{{num .Radius7}}</td><td>{{.Power}}</td><td>{{.Strong}}</td><td>{{.WindSpeed}}</td><td>{{.MoveSpeed}}</td><td>{{.Pressure}}</td><td>{{num .Lat}}</td><td>{{num .Lng}}</td><td>{{.Time}}</td><td>{{.StormID}}</td></tr>{{end}}

{{define "averages"}}<table border="2"><tr><td>{{.Key}}</td><td>{{.Value}}</td></tr>{{range .Buckets}}<tr><td>{{num .Pressure}}</td><td>{{num .Average}}</td></tr>{{end}}</table>{{end}}

{{define "header"}}<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.}}</title></head><body>
{{end}}

{{define "footer"}}
</body></html>
{{end}}

{{define "combined"}}{{template "header" "All seasons"}}<table border="2">{{template "pointHead"}}
{{range .}}{{range .Storms}}{{range .Points}}{{template "pointRow" .}}
{{end}}{{end}}{{end}}</table>{{template "footer"}}{{end}}

{{define "season"}}{{template "header" (printf "Season %d" .Year)}}<h3>Season: {{.Year}}</h3><h4>Tropical cyclones: {{.StormCount}}</h4>
{{template "averages" .MoveSpeed}}
<br><hr><br>
{{template "averages" .Radius}}
<br><hr><br>
{{range .Storms}}<h3>{{.ID}} {{.Name}} ({{.EnName}})</h3><p>Track length: {{km .TrackKm}} km</p><table border="2">{{template "pointHead"}}
{{range .Points}}{{template "pointRow" .}}
{{end}}</table>
{{end}}{{template "footer"}}{{end}}

{{define "summary"}}{{template "header" "Summary"}}{{range .Amounts}}<h3>{{.From}}-{{.To}} data points:<br>{{.Count}}</h3>
{{end}}<p>Generated at {{.GeneratedAt}}</p>
<table border="2"><tr><td>Year</td><td>Tropical cyclones</td><td>Points</td><td>Longest track (km)</td></tr>
{{range .Seasons}}<tr><td>{{.Year}}</td><td>{{.StormCount}}</td><td>{{.PointCount}}</td><td>{{km .LongestTrackKm}}</td></tr>
{{end}}</table>
<br><hr><br>
{{template "averages" .MoveSpeed}}
<br><hr><br>
{{template "averages" .Radius}}{{template "footer"}}{{end}}
`))
