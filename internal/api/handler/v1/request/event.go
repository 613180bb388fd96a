package request

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/guestlistapp/guestlist-api/internal/domain"
)

const dateLayout = "2006-01-02"

func validateGalleryURLs(value interface{}) error {
	urls, ok := value.([]string)
	if !ok {
		return nil
	}
	for _, u := range urls {
		if err := validation.Validate(u, is.URL); err != nil {
			return errors.New("gallery entries must be well-formed URLs")
		}
	}

	return nil
}

var (
	timeOfDayExp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	errInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
)

type CreateEventRequest struct {
	ClubID      uint     `json:"clubId"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Rules       string   `json:"rules,omitempty"`
	Genre       string   `json:"genre"`
	ImageURL    string   `json:"imageUrl"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`

	Price      float64 `json:"price"`
	PriceLabel string  `json:"priceLabel"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`

	GuestlistStatus       string  `json:"guestlistStatus,omitempty"`
	GuestlistLimit        *int    `json:"guestlistLimit,omitempty"`
	ClosingThreshold      *int    `json:"closingThreshold,omitempty"`
	GuestlistCloseTime    *string `json:"guestlistCloseTime,omitempty"`
	GuestlistCloseOnStart bool    `json:"guestlistCloseOnStart,omitempty"`
	Featured              bool    `json:"featured,omitempty"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ClubID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required, validation.Length(2, 5000)),
		validation.Field(&req.Genre, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.ImageURL, validation.Required, is.URL),
		validation.Field(&req.VideoURL, is.URL),
		validation.Field(&req.Gallery, validation.By(validateGalleryURLs)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.PriceLabel, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout).Error(errInvalidDate.Error())),
		validation.Field(&req.StartTime, validation.Required, validation.Match(timeOfDayExp)),
		validation.Field(&req.EndTime, validation.Required, validation.Match(timeOfDayExp)),
		validation.Field(&req.GuestlistStatus, validation.In(domain.GuestlistOpen, domain.GuestlistClosing, domain.GuestlistClosed)),
		validation.Field(&req.GuestlistLimit, validation.Min(1)),
		validation.Field(&req.ClosingThreshold, validation.Min(1)),
		validation.Field(&req.GuestlistCloseTime, validation.Date(time.RFC3339)),
	)
}

func (req *CreateEventRequest) ToDomain() (domain.Event, error) {
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return domain.Event{}, errInvalidDate
	}

	var closeTime *time.Time
	if req.GuestlistCloseTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.GuestlistCloseTime)
		if err != nil {
			return domain.Event{}, err
		}
		closeTime = &parsed
	}

	return domain.Event{
		ClubID:                req.ClubID,
		Title:                 req.Title,
		Location:              req.Location,
		Description:           req.Description,
		Rules:                 req.Rules,
		Genre:                 req.Genre,
		ImageURL:              req.ImageURL,
		VideoURL:              req.VideoURL,
		Gallery:               req.Gallery,
		Price:                 req.Price,
		PriceLabel:            req.PriceLabel,
		Date:                  date,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		GuestlistStatus:       req.GuestlistStatus,
		GuestlistLimit:        req.GuestlistLimit,
		ClosingThreshold:      req.ClosingThreshold,
		GuestlistCloseTime:    closeTime,
		GuestlistCloseOnStart: req.GuestlistCloseOnStart,
		Featured:              req.Featured,
	}, nil
}

// UpdateEventRequest is a partial payload; present fields are validated
// individually and applied as a column map.
type UpdateEventRequest struct {
	ClubID      *uint     `json:"clubId,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	Rules       *string   `json:"rules,omitempty"`
	Genre       *string   `json:"genre,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	VideoURL    *string   `json:"videoUrl,omitempty"`
	Gallery     *[]string `json:"gallery,omitempty"`

	Price      *float64 `json:"price,omitempty"`
	PriceLabel *string  `json:"priceLabel,omitempty"`
	Date       *string  `json:"date,omitempty"`
	StartTime  *string  `json:"startTime,omitempty"`
	EndTime    *string  `json:"endTime,omitempty"`

	GuestlistStatus       *string `json:"guestlistStatus,omitempty"`
	GuestlistLimit        *int    `json:"guestlistLimit,omitempty"`
	ClosingThreshold      *int    `json:"closingThreshold,omitempty"`
	GuestlistCloseTime    *string `json:"guestlistCloseTime,omitempty"`
	GuestlistCloseOnStart *bool   `json:"guestlistCloseOnStart,omitempty"`
	Featured              *bool   `json:"featured,omitempty"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ClubID, validation.Min(uint(1))),
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&req.Location, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.NilOrNotEmpty, validation.Length(2, 5000)),
		validation.Field(&req.Genre, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&req.ImageURL, validation.NilOrNotEmpty, is.URL),
		validation.Field(&req.VideoURL, is.URL),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.PriceLabel, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Date(dateLayout).Error(errInvalidDate.Error())),
		validation.Field(&req.StartTime, validation.Match(timeOfDayExp)),
		validation.Field(&req.EndTime, validation.Match(timeOfDayExp)),
		validation.Field(&req.GuestlistStatus, validation.In(domain.GuestlistOpen, domain.GuestlistClosing, domain.GuestlistClosed)),
		validation.Field(&req.GuestlistLimit, validation.Min(1)),
		validation.Field(&req.ClosingThreshold, validation.Min(1)),
		validation.Field(&req.GuestlistCloseTime, validation.Date(time.RFC3339)),
	)
}

func (req *UpdateEventRequest) Changes() (map[string]interface{}, error) {
	changes := map[string]interface{}{}
	if req.ClubID != nil {
		changes["club_id"] = *req.ClubID
	}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Rules != nil {
		changes["rules"] = *req.Rules
	}
	if req.Genre != nil {
		changes["genre"] = *req.Genre
	}
	if req.ImageURL != nil {
		changes["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		changes["video_url"] = *req.VideoURL
	}
	if req.Gallery != nil {
		changes["gallery"] = *req.Gallery
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.PriceLabel != nil {
		changes["price_label"] = *req.PriceLabel
	}
	if req.Date != nil {
		date, err := time.ParseInLocation(dateLayout, *req.Date, time.Local)
		if err != nil {
			return nil, errInvalidDate
		}
		changes["date"] = date
	}
	if req.StartTime != nil {
		changes["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		changes["end_time"] = *req.EndTime
	}
	if req.GuestlistStatus != nil {
		changes["guestlist_status"] = *req.GuestlistStatus
	}
	if req.GuestlistLimit != nil {
		changes["guestlist_limit"] = *req.GuestlistLimit
	}
	if req.ClosingThreshold != nil {
		changes["closing_threshold"] = *req.ClosingThreshold
	}
	if req.GuestlistCloseTime != nil {
		closeTime, err := time.Parse(time.RFC3339, *req.GuestlistCloseTime)
		if err != nil {
			return nil, err
		}
		changes["guestlist_close_time"] = closeTime
	}
	if req.GuestlistCloseOnStart != nil {
		changes["guestlist_close_on_start"] = *req.GuestlistCloseOnStart
	}
	if req.Featured != nil {
		changes["featured"] = *req.Featured
	}

	return changes, nil
}
