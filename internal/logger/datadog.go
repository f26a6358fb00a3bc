package logger

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"github.com/rs/zerolog"
)

const (
	defaultDataDogTimeout = 5 * time.Second
	dataDogSource         = "go"
)

// logSubmitter is the part of the datadog logs api used by DataDogWriter.
type logSubmitter interface {
	SubmitLog(
		ctx context.Context,
		body []datadogV2.HTTPLogItem,
		o ...datadogV2.SubmitLogOptionalParameters,
	) (interface{}, *http.Response, error)
}

// DataDogWriter ships every log line to the datadog http log intake.
// Lines are sent synchronously with cfg.Timeout; failures are reported through ErrorHandler.
type DataDogWriter struct {
	api      logSubmitter
	cfg      DataDog
	hostname string
}

// NewDataDogWriter creates a writer for the configured datadog site.
func NewDataDogWriter(cfg DataDog) *DataDogWriter {
	hostname, _ := os.Hostname()

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultDataDogTimeout
	}

	client := datadog.NewAPIClient(datadog.NewConfiguration())

	return &DataDogWriter{
		api:      datadogV2.NewLogsApi(client),
		cfg:      cfg,
		hostname: hostname,
	}
}

// Write implements io.Writer.
func (d *DataDogWriter) Write(p []byte) (int, error) {
	return d.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (d *DataDogWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l == zerolog.Disabled {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(d.context(), d.cfg.Timeout)
	defer cancel()

	item := datadogV2.HTTPLogItem{
		Ddsource: datadog.PtrString(dataDogSource),
		Hostname: datadog.PtrString(d.hostname),
		Message:  strings.TrimSpace(string(p)),
		Service:  datadog.PtrString(d.cfg.ServiceName),
	}

	if d.cfg.Tags != "" {
		item.Ddtags = datadog.PtrString(d.cfg.Tags)
	}

	if _, _, err := d.api.SubmitLog(ctx, []datadogV2.HTTPLogItem{item}); err != nil {
		ErrorHandler(err)
	}

	// never fail the other writers of a multi level writer
	return len(p), nil
}

func (d *DataDogWriter) context() context.Context {
	ctx := context.WithValue(
		context.Background(),
		datadog.ContextAPIKeys,
		map[string]datadog.APIKey{
			"apiKeyAuth": {Key: d.cfg.APIKey},
		},
	)

	if d.cfg.Site != "" {
		ctx = context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{
			"site": d.cfg.Site,
		})
	}

	return ctx
}
