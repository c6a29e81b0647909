package http

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var formPage []byte

// FormPage serves the credit form shell. Everything else on the page
// goes through the JSON endpoints.
func FormPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(formPage)
}
