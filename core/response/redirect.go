package response

import "net/http"

// RedirectSeeOther creates a 303 See Other response.
// Used after a POST so the browser follows up with a GET.
func RedirectSeeOther(url string) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return nil
	}
}
