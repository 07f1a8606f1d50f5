package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testListURI = "http://localhost:8081/Api/TyphoonList/"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1949, cfg.StartYear)
	assert.Equal(t, 2021, cfg.EndYear)
	assert.Equal(t, "./data/", cfg.OutputDir)
	assert.Equal(t, "http://typhoon.zjwater.gov.cn/Api/TyphoonList/", cfg.ListURI)
	assert.Equal(t, "http://typhoon.zjwater.gov.cn/Api/TyphoonInfo/", cfg.InfoURI)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.PushgatewayURL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, "typhoon-season-summaries", cfg.KafkaSummaryTopic)
	assert.Empty(t, cfg.ServeAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("START_YEAR", "1999")
	t.Setenv("END_YEAR", "2005")
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	t.Setenv("TYPHOON_LIST_URI", testListURI)
	t.Setenv("TYPHOON_INFO_URI", "http://localhost:8081/Api/TyphoonInfo/")
	t.Setenv("REQUEST_TIMEOUT_MS", "2500")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgateway:9091")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SUMMARY_TOPIC", "summaries")
	t.Setenv("SERVE_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1999, cfg.StartYear)
	assert.Equal(t, 2005, cfg.EndYear)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, testListURI, cfg.ListURI)
	assert.Equal(t, "http://localhost:8081/Api/TyphoonInfo/", cfg.InfoURI)
	assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "http://pushgateway:9091", cfg.PushgatewayURL)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, "summaries", cfg.KafkaSummaryTopic)
	assert.Equal(t, ":9090", cfg.ServeAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidYear(t *testing.T) {
	t.Setenv("START_YEAR", "nineteen")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "START_YEAR")
}

func TestLoad_InvalidEndYear(t *testing.T) {
	t.Setenv("END_YEAR", "20x1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "END_YEAR")
}

func TestLoad_StartAfterEnd(t *testing.T) {
	t.Setenv("START_YEAR", "2010")
	t.Setenv("END_YEAR", "2009")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "START_YEAR")
}

func TestLoad_SingleYear(t *testing.T) {
	t.Setenv("START_YEAR", "2019")
	t.Setenv("END_YEAR", "2019")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.StartYear, cfg.EndYear)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_MS", "ten")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT_MS")
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_MS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT_MS")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}
