package server

import "net/http"

// uploadFormHTML is the minimal upload page served at the root path.
const uploadFormHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>gazette — add article</title>
</head>
<body>
<h1>Add article</h1>
<form method="post" action="/api/articles">
  <p><label>Title <input name="title" required></label></p>
  <p><label>Category <input name="category"></label></p>
  <p><label>Tags (comma-separated) <input name="tags"></label></p>
  <p><label>Body<br><textarea name="body" rows="12" cols="80"></textarea></label></p>
  <p><button type="submit">Save</button></p>
</form>
</body>
</html>
`

func (s *Service) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	_, _ = w.Write([]byte(uploadFormHTML))
}
