package astrology

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/astrology", func(ar chi.Router) {
		ar.Get("/signs", listSignsHandler())
		ar.Get("/reading", readingHandler())
	})
}

// signResponse es una fila de la tabla de signos.
type signResponse struct {
	Sign    Sign    `json:"sign"`
	Symbol  string  `json:"symbol"`
	Element Element `json:"element"`
	Dates   string  `json:"dates"`
}

// ReadingResponse agrupa todo lo derivado de una fecha de nacimiento.
// Lo reutilizan profiles y dashboard.
type ReadingResponse struct {
	BirthDate      string  `json:"birth_date"`
	Sign           Sign    `json:"sign"`
	Symbol         string  `json:"symbol"`
	Element        Element `json:"element"`
	LifePathNumber int     `json:"life_path_number"`
}

func NewReadingResponse(d BirthDate) ReadingResponse {
	rd := ResolveZodiac(d)
	info, _ := Lookup(rd.Sign)
	return ReadingResponse{
		BirthDate:      d.String(),
		Sign:           rd.Sign,
		Symbol:         info.Symbol,
		Element:        rd.Element,
		LifePathNumber: LifePathNumber(d),
	}
}

// listSignsHandler godoc
// @Summary Listar signos
// @Description Tabla fija de los doce signos con su elemento y rango de fechas.
// @Tags astrology
// @Produce json
// @Success 200 {array} signResponse
// @Router /astrology/signs [get]
func listSignsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		signs := Signs()
		out := make([]signResponse, 0, len(signs))
		for _, s := range signs {
			out = append(out, signResponse{
				Sign:    s.Sign,
				Symbol:  s.Symbol,
				Element: s.Element,
				Dates:   s.Label,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// readingHandler godoc
// @Summary Lectura para una fecha
// @Description Signo, elemento y life path number para una fecha YYYY-MM-DD.
// @Tags astrology
// @Produce json
// @Param date query string true "Fecha de nacimiento (YYYY-MM-DD)"
// @Success 200 {object} ReadingResponse
// @Failure 400 {string} string "fecha inválida"
// @Router /astrology/reading [get]
func readingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := ParseBirthDate(r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, DateErrorMessage(err), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, NewReadingResponse(d))
	}
}

// DateErrorMessage arma el mensaje 400 nombrando el campo inválido cuando se conoce.
func DateErrorMessage(err error) string {
	var de *DateError
	if errors.As(err, &de) {
		return "birth_date: " + de.Error()
	}
	return "birth_date must be YYYY-MM-DD"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
