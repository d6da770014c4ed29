package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanpro/internal/core/domain"
)

func TestResult(t *testing.T) {
	tests := map[string]struct {
		result     domain.Result[domain.ConvertResponse]
		expSuccess bool
		expErr     string
		expLocator string
		expJSON    string
	}{
		"A successful result should expose its data.": {
			result:     domain.Ok(domain.ConvertResponse{FileResult: domain.FileResult{FileURL: "/files/a.docx"}}),
			expSuccess: true,
			expLocator: "/files/a.docx",
			expJSON:    `{"success":true,"data":{"fileUrl":"/files/a.docx"}}`,
		},

		"A failed result should expose its message.": {
			result:  domain.Fail[domain.ConvertResponse]("Invalid file"),
			expErr:  "Invalid file",
			expJSON: `{"success":false,"error":"Invalid file"}`,
		},

		"A failed result without message should use the generic one.": {
			result:  domain.Fail[domain.ConvertResponse](""),
			expErr:  domain.GenericErrorMessage,
			expJSON: `{"success":false,"error":"Something went wrong"}`,
		},

		"The zero result should be a failure.": {
			result:  domain.Result[domain.ConvertResponse]{},
			expErr:  domain.GenericErrorMessage,
			expJSON: `{"success":false,"error":"Something went wrong"}`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			assert.Equal(test.expSuccess, test.result.Success())
			assert.Equal(test.expErr, test.result.Err())
			assert.Equal(test.expLocator, domain.LocatorOf(test.result))

			_, ok := test.result.Data()
			assert.Equal(test.expSuccess, ok)
			if !test.expSuccess {
				assert.Nil(test.result.Payload())
			}

			got, err := json.Marshal(test.result)
			require.NoError(err)
			assert.JSONEq(test.expJSON, string(got))
		})
	}
}

func TestLocatorOfNil(t *testing.T) {
	assert.Equal(t, "", domain.LocatorOf(nil))
}

func TestSplitStatusTerminal(t *testing.T) {
	tests := map[string]bool{
		domain.SplitStatusPending:    false,
		domain.SplitStatusProcessing: false,
		domain.SplitStatusCompleted:  true,
		domain.SplitStatusFailed:     true,
		domain.SplitStatusError:      true,
	}

	for status, exp := range tests {
		t.Run(status, func(t *testing.T) {
			assert.Equal(t, exp, domain.SplitStatus{Status: status}.Terminal())
		})
	}
}
