package httpapi

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"vaultsearch/internal/application/commands"
)

type homePage struct {
	Root     string
	AllowAny bool
	Vault    string
}

type notePage struct {
	Title   string
	RelPath string
	Body    template.HTML
}

type setVaultRequest struct {
	Path string `json:"path"`
}

type setVaultResponse struct {
	OK    bool   `json:"ok"`
	Count int    `json:"count"`
	Vault string `json:"vault"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	page := homePage{
		Root:     s.deps.Guard.Root(),
		AllowAny: s.deps.Guard.AllowAny(),
		Vault:    s.deps.Store.Current().VaultRoot(),
	}
	s.render(w, "index.html", page)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	cmd := commands.NewListDirectoryCommand(s.deps.Guard, s.deps.Lister, r.URL.Query().Get("path"))
	listing, err := cmd.Execute(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleSetVault(w http.ResponseWriter, r *http.Request) {
	// Unparseable bodies fall through as a missing path
	var req setVaultRequest
	_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req)

	cmd := commands.NewSelectVaultCommand(s.deps.Guard, s.deps.Crawler, s.deps.Store, req.Path)
	res, err := cmd.Execute(r.Context())
	if err != nil {
		s.deps.Metrics.RecordVaultSelectionError()
		s.writeError(w, r, err)
		return
	}

	s.deps.Metrics.RecordVaultSelection(res.Count, res.Stats.ReadFailures, res.Stats.Duration)
	s.log.LogVaultIndexed(res.Vault, res.Count, res.Stats.ReadFailures, res.Stats.Duration)

	writeJSON(w, http.StatusOK, setVaultResponse{OK: true, Count: res.Count, Vault: res.Vault})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	cmd := commands.NewSearchCommand(s.deps.Store, s.deps.Links, r.URL.Query().Get("q"))
	results, err := cmd.Execute(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.deps.Metrics.RecordSearch(len(results))
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleVault(w http.ResponseWriter, r *http.Request) {
	info, err := commands.NewVaultInfoCommand(s.deps.Store).Execute(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	doc, err := commands.NewOpenDocumentCommand(s.deps.Store, r.URL.Query().Get("doc_id")).Execute(r.Context())
	if err != nil {
		status, msg := statusFor(err)
		http.Error(w, msg, status)
		return
	}

	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(doc.Content), &body); err != nil {
		s.log.Warn().Err(err).Int("doc_id", doc.ID).Msg("markdown render failed")
		body.Reset()
		body.WriteString("<pre>" + template.HTMLEscapeString(doc.Content) + "</pre>")
	}

	s.render(w, "note.html", notePage{
		Title:   doc.Title,
		RelPath: doc.RelPath,
		Body:    template.HTML(body.String()),
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("template render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
