package usecase

import "context"

// HealthProbe reports the state of one dependency; nil error means healthy
type HealthProbe func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	probes map[string]HealthProbe
}

// NewHealthUsecase builds a checker over named probes. A nil probe reports "disabled".
func NewHealthUsecase(probes map[string]HealthProbe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{
		"status": "ok",
	}
	for name, probe := range u.probes {
		switch {
		case probe == nil:
			out[name] = "disabled"
		case probe(ctx) != nil:
			out[name] = "down"
			out["status"] = "degraded"
		default:
			out[name] = "ok"
		}
	}
	return out
}
