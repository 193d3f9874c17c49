package restapi

import (
	"catalogserver/models"
	"catalogserver/service"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type API struct {
	events *service.EventService
}

func NewAPI(events *service.EventService) *API {
	return &API{events: events}
}

func AddStandardHeaders(writer http.ResponseWriter) {
	headers := map[string]string{
		"Server":                      "CatalogServer",
		"Access-Control-Allow-Origin": "*",
	}

	for key, value := range headers {
		writer.Header().Set(key, value)
	}
}

// JSON helper methods to not repeat the same code in every handler

// Sends a JSON response with the given status code and payload.
func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: could not write json response: %v", err)
	}
}

// Sends an error response with the given status code and message.
func sendError(w http.ResponseWriter, statusCode int, message string) {
	sendJSON(w, statusCode, map[string]string{"error": message})
}

// Maps a service error to a response. Not found goes back verbatim as a 404, anything
// else is logged and hidden behind a generic 500.
func sendServiceError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, service.ErrNotFound) {
		sendError(w, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, service.ErrInvalidRating) {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("ERROR: %s: %v", fallback, err)
	sendError(w, http.StatusInternalServerError, fallback)
}

// parses the {id} path parameter, writing a 400 and returning false when it isn't a number
func eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid event id")
		return 0, false
	}
	return id, true
}

// Handles the health check endpoint to verify if the store is reachable.
// If somehow the DB has gone down, this will return a 503 Service Unavailable status so clients know that the service is not operational.
func (api *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := api.events.Ping(ctx); err != nil {
		sendError(w, http.StatusServiceUnavailable, "database is not available")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Returns the whole catalog, unfiltered.
func (api *API) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := api.events.GetEvents(r.Context())
	if err != nil {
		sendServiceError(w, err, "Could not retrieve events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	sendJSON(w, http.StatusOK, events)
}

// Searches members by name, /search/{query}.
func (api *API) SearchEventsHandler(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	// chi matches on RawPath when it is set, so the segment is still escaped (%26, %2F, ...)
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(query)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Invalid search query")
			return
		}
		query = unescaped
	}

	api.search(w, r, query)
}

// Same search with the query in ?q=, which is the only way to send an empty one.
func (api *API) SearchEventsByParamHandler(w http.ResponseWriter, r *http.Request) {
	api.search(w, r, r.URL.Query().Get("q"))
}

func (api *API) search(w http.ResponseWriter, r *http.Request, query string) {
	events, err := api.events.GetFilteredEvents(r.Context(), query)
	if err != nil {
		sendServiceError(w, err, "Could not search events")
		return
	}

	sendJSON(w, http.StatusOK, events)
}

func (api *API) GetEventHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	event, err := api.events.GetEvent(r.Context(), id)
	if err != nil {
		sendServiceError(w, err, "Could not retrieve event")
		return
	}

	sendJSON(w, http.StatusOK, event)
}

// Deletes an event. Success has no body.
func (api *API) DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	if err := api.events.Delete(r.Context(), id); err != nil {
		sendServiceError(w, err, "Failed to delete event")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Updates the rating and comment of an event. Everything else in the payload is ignored.
func (api *API) UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var incoming models.Event
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := api.events.UpdateEvent(r.Context(), id, incoming)
	if err != nil {
		sendServiceError(w, err, "Failed to update event")
		return
	}

	sendJSON(w, http.StatusOK, saved)
}

func (api *API) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Input Validation
	if event.Title == "" {
		sendError(w, http.StatusBadRequest, "title is required")
		return
	}
	if event.NbStars != nil && (*event.NbStars < 0 || *event.NbStars > models.MaxStars) {
		sendError(w, http.StatusBadRequest, "nbStars must be between 0 and "+strconv.Itoa(models.MaxStars))
		return
	}

	created, err := api.events.CreateEvent(r.Context(), event)
	if err != nil {
		sendServiceError(w, err, "Failed to create event")
		return
	}

	sendJSON(w, http.StatusCreated, created)
}
