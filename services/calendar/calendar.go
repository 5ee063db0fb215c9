package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// Event is the external meeting created for an admitted reservation.
type Event struct {
	ExternalEventRef string `json:"externalEventRef"`
	JoinLink         string `json:"joinLink"`
}

// Service creates the external meeting event for a reservation. Called
// best-effort after admission; a failure here never rolls the booking back.
type Service interface {
	CreateEvent(ctx context.Context, res *models.Reservation) (*Event, error)
}

// MeetLinkService issues meeting references and join links under a configured
// base URL.
type MeetLinkService struct {
	BaseURL string
	Logger  *zap.Logger
}

// NewMeetLinkService constructs the default calendar collaborator.
func NewMeetLinkService(baseURL string, logger *zap.Logger) *MeetLinkService {
	return &MeetLinkService{BaseURL: baseURL, Logger: logger}
}

func (s *MeetLinkService) CreateEvent(_ context.Context, res *models.Reservation) (*Event, error) {
	if s.BaseURL == "" {
		return nil, errors.New("calendar: no meet link base URL configured")
	}

	ref := uuid.New().String()
	event := &Event{
		ExternalEventRef: ref,
		JoinLink:         fmt.Sprintf("%s/%s", strings.TrimRight(s.BaseURL, "/"), ref),
	}

	if s.Logger != nil {
		s.Logger.Info("calendar event created",
			zap.String("reservationID", res.ID),
			zap.String("eventRef", ref))
	}
	return event, nil
}
