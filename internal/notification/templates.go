package notification

import (
	"context"
	"fmt"
	"time"
)

const (
	TypeReservationConfirmed = "reservation_confirmed"
	TypeReservationCancelled = "reservation_cancelled"
	TypePenaltyApplied       = "penalty_applied"
	TypePurchaseConfirmed    = "purchase_confirmed"
	TypeWelcome              = "welcome"
)

func (s *Service) SendWelcome(ctx context.Context, email, name string) error {
	subject := "Welcome to Innata Studio"
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Browse the schedule, pick a package and
reserve your first ride.

- Innata Studio`, name)

	return s.Enqueue(ctx, email, name, TypeWelcome, subject, body)
}

func (s *Service) SendReservationConfirmed(ctx context.Context, email, name, className string, startsAt time.Time) error {
	subject := "Reservation Confirmed - " + className
	body := fmt.Sprintf(`Hi %s,

Your spot is reserved!

Class: %s
Time: %s

See you on the bike!

- Innata Studio`, name, className, startsAt.Format("Jan 2, 2006 at 3:04 PM"))

	return s.Enqueue(ctx, email, name, TypeReservationConfirmed, subject, body)
}

func (s *Service) SendReservationCancelled(ctx context.Context, email, name, className string, startsAt time.Time, refunded bool) error {
	subject := "Reservation Cancelled - " + className
	credit := "The class was not returned to your package."
	if refunded {
		credit = "The class has been returned to your package."
	}
	body := fmt.Sprintf(`Hi %s,

Your reservation has been cancelled:

Class: %s
Time: %s

%s

- Innata Studio`, name, className, startsAt.Format("Jan 2, 2006 at 3:04 PM"), credit)

	return s.Enqueue(ctx, email, name, TypeReservationCancelled, subject, body)
}

func (s *Service) SendPenaltyApplied(ctx context.Context, email, name, missedClass, penalizedClass string) error {
	subject := "Missed Class - Reservation Cancelled"
	body := fmt.Sprintf(`Hi %s,

You missed %s without cancelling in advance.

Under the Unlimited Week policy your next reservation (%s) has been
cancelled automatically and will not be refunded.

- Innata Studio`, name, missedClass, penalizedClass)

	return s.Enqueue(ctx, email, name, TypePenaltyApplied, subject, body)
}

func (s *Service) SendPurchaseConfirmed(ctx context.Context, email, name, packageName string) error {
	subject := "Payment Confirmed - " + packageName
	body := fmt.Sprintf(`Hi %s,

Your payment has been confirmed and your package is now active:

Package: %s

Book your classes any time from the app.

- Innata Studio`, name, packageName)

	return s.Enqueue(ctx, email, name, TypePurchaseConfirmed, subject, body)
}
