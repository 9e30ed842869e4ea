package contactform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/relayform/pkg/contactform"
)

func TestBuildTemplateParameters(t *testing.T) {
	t.Parallel()

	in := contactform.ContactInput{Name: "Ann", Email: "ann@x.com", Message: "Hi"}

	tests := []struct {
		name       string
		in         contactform.ContactInput
		wantEmail  string
		senderCopy bool
	}{
		{name: "recipient only", in: in, wantEmail: "dest@example.com"},
		{name: "sender copy", in: in, senderCopy: true, wantEmail: "dest@example.com, ann@x.com"},
		{name: "sender copy without address", in: contactform.ContactInput{Name: "Ann"}, senderCopy: true, wantEmail: "dest@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := contactform.BuildTemplateParameters(tt.in, "Team", "dest@example.com", tt.senderCopy)
			assert.Equal(t, tt.in.Name, p.FromName)
			assert.Equal(t, tt.in.Email, p.FromEmail)
			assert.Equal(t, "Team", p.ToName)
			assert.Equal(t, tt.wantEmail, p.Email)
		})
	}
}

func TestTemplateParameters_Map(t *testing.T) {
	t.Parallel()

	p := contactform.TemplateParameters{
		FromName:  "Ann",
		FromEmail: "ann@x.com",
		Message:   "line one\nline <two>",
		ToName:    "Team",
		Email:     "dest@example.com",
	}

	assert.Equal(t, map[string]string{
		"from_name":  "Ann",
		"from_email": "ann@x.com",
		"message":    "line one\nline <two>",
		"to_name":    "Team",
		"email":      "dest@example.com",
	}, p.Map())
}
