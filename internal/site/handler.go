// AngelaMos | 2026
// handler.go

// Package site serves the public marketing content: contact details,
// the service catalogue and the gallery captions. No authentication.
package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shreeram-borwells/srb-backend/internal/config"
	"github.com/shreeram-borwells/srb-backend/internal/core"
)

type Handler struct {
	company config.CompanyConfig
}

func NewHandler(company config.CompanyConfig) *Handler {
	return &Handler{company: company}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/site", func(r chi.Router) {
		r.Get("/contact", h.GetContact)
		r.Get("/services", h.GetServices)
		r.Get("/gallery", h.GetGallery)
	})
}

type ContactResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	MapURL  string `json:"mapUrl"`
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	core.OK(w, ContactResponse{
		Name:    h.company.Name,
		Phone:   h.company.Phone,
		Email:   h.company.Email,
		Address: h.company.Address,
		MapURL:  h.company.MapURL,
	})
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var services = []Service{
	{
		Title:       "Deep Borewell Drilling",
		Description: "Utilizing advanced rotary and hammering techniques for high-yield wells in all rock types, maximizing water discovery.",
	},
	{
		Title:       "Pumping Solutions",
		Description: "Professional installation of reliable submersible and jet pumps, perfectly matched to borewell depth and flow capacity.",
	},
	{
		Title:       "Borewell Maintenance",
		Description: "Comprehensive flushing, cleaning, and preventative maintenance services to preserve water quality and prolong borewell life.",
	},
}

func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	core.OK(w, services)
}

type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

var gallery = []GalleryImage{
	{
		URL:     "/Image/img1.jpeg",
		Alt:     "Modern Drilling Rig in Action",
		Caption: "Utilizing state-of-art machinery for precision drilling across diverse landscapes.",
	},
	{
		URL:     "/Image/img2.jpeg",
		Alt:     "Successful Borewell Completion",
		Caption: "Delivering reliable, clean water to agricultural, residential, and industrial clients.",
	},
	{
		URL:     "/Image/img3.jpeg",
		Alt:     "Safety and Planning First",
		Caption: "Rigorous safety protocols and geological planning ensure project success and longevity.",
	},
}

func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	core.OK(w, gallery)
}
