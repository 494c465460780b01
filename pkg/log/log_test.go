package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/ospath/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level, format string
		wantErr       error
		wantOut       string
	}{
		"json":       {level: "debug", format: "json", wantOut: `"msg":"hello"`},
		"logfmt":     {level: "INFO", format: "logfmt", wantOut: "msg=hello"},
		"text":       {level: "warning", format: "text", wantOut: ""},
		"bad level":  {level: "loud", format: "text", wantErr: log.ErrInvalidLevel},
		"bad format": {level: "info", format: "xml", wantErr: log.ErrInvalidFormat},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			h, err := log.CreateHandlerWithStrings(buf, tc.level, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)

			slog.New(h).Info("hello", "path", "C:/a")
			if tc.wantOut == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tc.wantOut)
			assert.Contains(t, buf.String(), "C:/a")
		})
	}
}
