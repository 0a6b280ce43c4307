package common

import "testing"

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "default api", input: "https://www.papercall.io/api/v1", want: "https://www.papercall.io/api/v1"},
		{name: "trailing slash trimmed", input: "https://www.papercall.io/api/v1/", want: "https://www.papercall.io/api/v1"},
		{name: "quotes and whitespace", input: `  "https://www.papercall.io"  `, want: "https://www.papercall.io"},
		{name: "local test server with port", input: "http://127.0.0.1:8080/api", want: "http://127.0.0.1:8080/api"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "no scheme", input: "www.papercall.io/api/v1", wantErr: true},
		{name: "ftp scheme", input: "ftp://papercall.io", wantErr: true},
		{name: "query string", input: "https://www.papercall.io/api?x=1", wantErr: true},
		{name: "spaces inside", input: "https://www.paper call.io", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateBaseURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateBaseURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateBaseURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
