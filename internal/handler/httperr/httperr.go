package httperr

import (
	"net/http"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Rule maps an error kind to a status and client-facing message. A nil
// Message callback means the static Text is used.
type Rule struct {
	Target  error
	Status  int
	Text    string
	Message func(err error) string
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRules answers with the first rule whose Target matches err, and
// with a plain 500 when none does.
func AbortWithRules(c *gin.Context, err error, rules []Rule) {
	for _, r := range rules {
		if !errs.Is(err, r.Target) {
			continue
		}
		msg := r.Text
		if r.Message != nil {
			msg = r.Message(err)
		}
		AbortWithError(c, r.Status, err, msg, nil)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
