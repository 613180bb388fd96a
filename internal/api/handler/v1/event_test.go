package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/service"
)

type stubEventService struct {
	events   map[uint]domain.AnnotatedEvent
	bookings map[uint][]domain.Booking

	lastFilter domain.EventFilter
}

func newStubEventService() *stubEventService {
	return &stubEventService{
		events:   map[uint]domain.AnnotatedEvent{},
		bookings: map[uint][]domain.Booking{},
	}
}

func (s *stubEventService) CreateEvent(_ context.Context, event domain.Event) (domain.AnnotatedEvent, error) {
	event.ID = uint(len(s.events) + 1)
	annotated := domain.AnnotatedEvent{Event: event, EffectiveStatus: domain.GuestlistOpen}
	s.events[event.ID] = annotated

	return annotated, nil
}

func (s *stubEventService) GetEvents(_ context.Context, filter domain.EventFilter) ([]domain.AnnotatedEvent, error) {
	s.lastFilter = filter

	out := make([]domain.AnnotatedEvent, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}

	return out, nil
}

func (s *stubEventService) GetEvent(_ context.Context, id uint) (domain.AnnotatedEvent, error) {
	event, ok := s.events[id]
	if !ok {
		return domain.AnnotatedEvent{}, service.ErrEventNotFound
	}

	return event, nil
}

func (s *stubEventService) UpdateEvent(_ context.Context, id uint, changes map[string]interface{}) (domain.AnnotatedEvent, error) {
	event, ok := s.events[id]
	if !ok {
		return domain.AnnotatedEvent{}, service.ErrEventNotFound
	}

	if title, ok := changes["title"].(string); ok {
		event.Title = title
	}
	s.events[id] = event

	return event, nil
}

func (s *stubEventService) DeleteEvent(_ context.Context, id uint) error {
	if _, ok := s.events[id]; !ok {
		return service.ErrEventNotFound
	}
	delete(s.events, id)

	return nil
}

func (s *stubEventService) CreateBooking(_ context.Context, booking domain.Booking) (domain.Booking, error) {
	if _, ok := s.events[booking.EventID]; !ok {
		return domain.Booking{}, service.ErrEventNotFound
	}

	booking.ID = 1
	s.bookings[booking.EventID] = append(s.bookings[booking.EventID], booking)

	return booking, nil
}

func (s *stubEventService) GetBookings(_ context.Context, eventID uint) ([]domain.Booking, error) {
	if _, ok := s.events[eventID]; !ok {
		return nil, service.ErrEventNotFound
	}

	return s.bookings[eventID], nil
}

func setupEventRouter(svc EventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewEventHandler(svc)
	router.GET("/events", h.HandleGetEvents)
	router.GET("/events/:eventID", h.HandleGetEvent)
	router.POST("/events", h.HandleCreateEvent)
	router.PUT("/events/:eventID", h.HandleUpdateEvent)
	router.DELETE("/events/:eventID", h.HandleDeleteEvent)
	router.POST("/events/:eventID/bookings", h.HandleCreateBooking)
	router.GET("/events/:eventID/bookings", h.HandleGetBookings)

	return router
}

func doJSON(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func seedEvent(t *testing.T, svc *stubEventService) domain.AnnotatedEvent {
	t.Helper()

	limit := 50
	created, err := svc.CreateEvent(context.Background(), domain.Event{
		ClubID:         1,
		Club:           "Club Midnight",
		Title:          "Saturday Night",
		Genre:          "Techno",
		Date:           time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		GuestlistLimit: &limit,
	})
	require.NoError(t, err)

	return created
}

const validCreateEventBody = `{
	"clubId": 1,
	"title": "Saturday Night",
	"location": "Lower Parel",
	"description": "Weekly techno night",
	"genre": "Techno",
	"imageUrl": "https://media.example.com/poster.jpg",
	"price": 1500,
	"priceLabel": "1500 per couple",
	"date": "2026-09-05",
	"startTime": "21:00",
	"endTime": "02:00"
}`

func TestHandleGetEvents(t *testing.T) {
	svc := newStubEventService()
	seedEvent(t, svc)
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodGet, "/events", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalGuests":0`)
	assert.Contains(t, w.Body.String(), `"spotsRemaining":null`)
	assert.Contains(t, w.Body.String(), `"club":"Club Midnight"`)
}

func TestHandleGetEvents_FilterParsing(t *testing.T) {
	svc := newStubEventService()
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodGet, "/events?genre=ALL&upcoming=true&featured=false", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, svc.lastFilter.Genre)
	assert.True(t, svc.lastFilter.Upcoming)
	require.NotNil(t, svc.lastFilter.Featured)
	assert.False(t, *svc.lastFilter.Featured)

	w = doJSON(router, http.MethodGet, "/events?upcoming=maybe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetEvent_NotFound(t *testing.T) {
	router := setupEventRouter(newStubEventService())

	w := doJSON(router, http.MethodGet, "/events/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"event not found"}`, w.Body.String())
}

func TestHandleGetEvent_BadID(t *testing.T) {
	router := setupEventRouter(newStubEventService())

	w := doJSON(router, http.MethodGet, "/events/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateEvent(t *testing.T) {
	svc := newStubEventService()
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodPost, "/events", validCreateEventBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Saturday Night"`)
	assert.Contains(t, w.Body.String(), `"effectiveStatus":"open"`)
}

func TestHandleCreateEvent_ValidationErrors(t *testing.T) {
	router := setupEventRouter(newStubEventService())

	tests := []struct {
		name string
		body string
	}{
		{"empty payload", `{}`},
		{"malformed json", `{"title":`},
		{"bad date", strings.Replace(validCreateEventBody, "2026-09-05", "05/09/2026", 1)},
		{"bad start time", strings.Replace(validCreateEventBody, "21:00", "9pm", 1)},
		{"bad image url", strings.Replace(validCreateEventBody, "https://media.example.com/poster.jpg", "not a url", 1)},
		{"unknown status", strings.Replace(validCreateEventBody, `"endTime": "02:00"`, `"endTime": "02:00", "guestlistStatus": "paused"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/events", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleUpdateEvent(t *testing.T) {
	svc := newStubEventService()
	created := seedEvent(t, svc)
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodPut, "/events/1", `{"title":"Renamed Night"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Renamed Night"`)
	assert.Equal(t, "Saturday Night", created.Title)
}

func TestHandleUpdateEvent_NotFound(t *testing.T) {
	router := setupEventRouter(newStubEventService())

	w := doJSON(router, http.MethodPut, "/events/999", `{"title":"Renamed Night"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDeleteEvent(t *testing.T) {
	svc := newStubEventService()
	seedEvent(t, svc)
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodDelete, "/events/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodDelete, "/events/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCreateBooking(t *testing.T) {
	svc := newStubEventService()
	seedEvent(t, svc)
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodPost, "/events/1/bookings", `{"couples":2,"ladies":1,"stags":0}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"couples":2`)
}

func TestHandleCreateBooking_Empty(t *testing.T) {
	svc := newStubEventService()
	seedEvent(t, svc)
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodPost, "/events/1/bookings", `{"couples":0,"ladies":0,"stags":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.bookings[1])
}

func TestHandleCreateBooking_UnknownEvent(t *testing.T) {
	router := setupEventRouter(newStubEventService())

	w := doJSON(router, http.MethodPost, "/events/999/bookings", `{"stags":1}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetBookings(t *testing.T) {
	svc := newStubEventService()
	seedEvent(t, svc)
	router := setupEventRouter(svc)

	w := doJSON(router, http.MethodPost, "/events/1/bookings", `{"couples":3,"stags":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/events/1/bookings", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"couples":3`)
	assert.Contains(t, w.Body.String(), `"stags":2`)
}
