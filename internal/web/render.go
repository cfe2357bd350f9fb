package web

import (
	"html/template"
	"net/http"
	"time"
)

const templateDir = "web/templates"

// RenderTemplate renders a page template with the base layout.
func RenderTemplate(w http.ResponseWriter, templateName string, data map[string]interface{}) error {
	return renderStatus(w, http.StatusOK, templateName, data)
}

// RenderTemplateStatus renders a page with an explicit status code, used
// for form re-renders after validation failures.
func RenderTemplateStatus(w http.ResponseWriter, status int, templateName string, data map[string]interface{}) error {
	return renderStatus(w, status, templateName, data)
}

func renderStatus(w http.ResponseWriter, status int, templateName string, data map[string]interface{}) error {
	funcMap := template.FuncMap{
		"now": func() time.Time {
			return time.Now().UTC()
		},
		"fmtDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	}

	t := template.New("base.html").Funcs(funcMap)
	t, err := t.ParseFiles(
		templateDir+"/base.html",
		templateDir+"/"+templateName,
	)
	if err != nil {
		http.Error(w, "Error loading template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.Execute(w, data); err != nil {
		return err
	}

	return nil
}
