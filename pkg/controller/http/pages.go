package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vaxbook/frontend"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
)

// pageData is the value every page template executes against
type pageData struct {
	Title string
	Auth  *model.AuthContext
	Data  any
	Error string
}

// PageHandler renders the server-side HTML pages
type PageHandler struct {
	templates    frontend.Templates
	uc           *UseCases
	secureCookie bool
}

// NewPageHandler creates a new page handler
func NewPageHandler(templates frontend.Templates, uc *UseCases, secureCookie bool) *PageHandler {
	return &PageHandler{
		templates:    templates,
		uc:           uc,
		secureCookie: secureCookie,
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"price": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"months": func() []int {
			months := make([]int, 0, model.MaxMonth-model.MinMonth+1)
			for m := model.MinMonth; m <= model.MaxMonth; m++ {
				months = append(months, m)
			}
			return months
		},
		"monthName": func(m int) string { return time.Month(m + 1).String() },
		"isWeekend": func(g *model.ScheduleGrid, day int) bool {
			wd := g.Weekday(day)
			return wd == time.Saturday || wd == time.Sunday
		},
	}
}

// render executes page into a buffer first so a template failure still yields
// a clean 500
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	if authCtx, ok := model.GetAuthContext(r.Context()); ok && authCtx.IsAuthenticated() {
		data.Auth = authCtx
	}

	tmpl, ok := h.templates[page]
	if !ok {
		ctxlog.From(r.Context()).Error("Unknown page template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write page", "page", page, "error", err)
	}
}

// HandleHome renders the landing page
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", pageData{Title: "Home"})
}

// HandleNotFound renders the landing page with a 404 status
func (h *PageHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "home", pageData{Title: "Not found"})
}

// HandlePrices renders the vaccine price list
func (h *PageHandler) HandlePrices(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Price list"}

	vaccines, err := h.uc.comboUC.ListVaccines(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Warn("Failed to load price list", "error", err)
		data.Error = "The price list is not available right now."
	} else {
		data.Data = vaccines
	}
	h.render(w, r, http.StatusOK, "prices", data)
}

// HandleCombos renders the combo table
func (h *PageHandler) HandleCombos(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Combos"}

	catalog, err := h.uc.comboUC.ListCombos(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Warn("Failed to load combos", "error", err)
		data.Error = "Combos are not available right now."
	} else {
		data.Data = catalog
	}
	h.render(w, r, http.StatusOK, "combos", data)
}

// HandleSchedule renders the staff schedule grid. Unparseable selections fall
// back to the current month and year.
func (h *PageHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := model.GetAuthContext(r.Context())
	if !ok || !authCtx.Role.CanViewSchedule() {
		h.render(w, r, http.StatusForbidden, "home", pageData{
			Title: "Forbidden",
			Error: "The schedule is only available to staff.",
		})
		return
	}

	grid, err := h.uc.scheduleUC.BuildGrid(r.Context(), formInt(r, "month"), formInt(r, "year"))
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to build schedule", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, "schedule", pageData{Title: "Schedule", Data: grid})
}

// HandleAccount renders the account page with the children list
func (h *PageHandler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	authCtx, _ := model.GetAuthContext(r.Context())
	data := pageData{Title: "My account"}

	children, err := h.uc.childUC.ListChildren(r.Context(), authCtx)
	if err != nil {
		ctxlog.From(r.Context()).Warn("Failed to load children", "error", err)
		data.Error = "Children could not be loaded."
	} else {
		data.Data = children
	}
	h.render(w, r, http.StatusOK, "account", data)
}

// HandleLoginPage renders the login form
func (h *PageHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if authCtx, ok := model.GetAuthContext(r.Context()); ok && authCtx.IsAuthenticated() {
		http.Redirect(w, r, "/account", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login", pageData{Title: "Log in"})
}

// HandleLoginForm handles the login form submission
func (h *PageHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "login", pageData{Title: "Log in", Error: "Invalid form submission."})
		return
	}

	session, err := h.uc.authUC.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		ctxlog.From(r.Context()).Info("Login failed", "username", r.PostFormValue("username"), "error", err)
		status := statusOf(err, http.StatusBadGateway)
		message := "Login is not available right now."
		switch status {
		case http.StatusBadRequest:
			message = "Username and password are required."
		case http.StatusUnauthorized:
			message = "Invalid username or password."
		}
		h.render(w, r, status, "login", pageData{Title: "Log in", Error: message})
		return
	}

	setSessionCookies(w, session, h.secureCookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogoutForm handles the logout button
func (h *PageHandler) HandleLogoutForm(w http.ResponseWriter, r *http.Request) {
	endSession(w, r, h.uc.authUC)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// formInt reads an optional integer query value, treating anything
// unparseable as absent
func formInt(r *http.Request, key string) *int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return nil
	}
	return &v
}
