package subscription

import (
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

type Plan struct {
	Type        PackageType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PriceCents  int64       `json:"price_cents"`
	ClassQuota  int         `json:"class_quota"`
	WeekBound   bool        `json:"week_bound"`
}

func Plans() []Plan {
	return []Plan{
		{
			Type:        TypePack5,
			Name:        "Paquete 5",
			Description: "5 clases, vigencia de 30 días",
			PriceCents:  89900,
			ClassQuota:  5,
			WeekBound:   false,
		},
		{
			Type:        TypePack10,
			Name:        "Paquete 10",
			Description: "10 clases, vigencia de 30 días",
			PriceCents:  159900,
			ClassQuota:  10,
			WeekBound:   false,
		},
		{
			Type:        TypeUnlimitedWeek,
			Name:        "Semana Ilimitada",
			Description: "Hasta 25 clases de lunes a viernes en la semana elegida",
			PriceCents:  119900,
			ClassQuota:  25,
			WeekBound:   true,
		},
	}
}

func FindPlan(planType string) (Plan, error) {
	for _, p := range Plans() {
		if string(p.Type) == planType {
			return p, nil
		}
	}
	return Plan{}, apperrors.New(apperrors.KindValidation, apperrors.CodeUnknownPackageType, "unknown package type")
}
