package holding

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/department"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a snapshot before it is adopted: required fields, unique company
// slugs, unique training module ids and a loop-free organizational chart for the
// holding and for every subsidiary.
func Validate(s Snapshot) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperror.NewValidation("invalid document").WithCause(err)
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[trimRoot(fe.Namespace())] = fe.Tag()
		}
		return apperror.NewValidation("invalid document").WithDetail("fields", fields)
	}

	if dups := duplicates(s.Subsidiaries, func(c CompanySnapshot) string { return c.Slug }); len(dups) > 0 {
		return apperror.NewValidation("company slugs must be unique").WithDetail("duplicate_slugs", dups)
	}
	if dups := duplicates(s.TrainingModules, func(m TrainingModule) string { return m.ID }); len(dups) > 0 {
		return apperror.NewValidation("training module ids must be unique").WithDetail("duplicate_ids", dups)
	}

	if err := department.Validate(s.OrganizationalChart); err != nil {
		return withChart(err, "")
	}
	for _, c := range s.Subsidiaries {
		if err := department.Validate(c.OrganizationalChart); err != nil {
			return withChart(err, c.Slug)
		}
	}
	return nil
}

// withChart records which chart failed; an empty slug names the holding chart.
func withChart(err error, slug string) error {
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		return err
	}
	if slug == "" {
		return appErr.WithDetail("chart", "holding")
	}
	return appErr.WithDetail("chart", slug)
}

func duplicates[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		k := key(it)
		if seen[k] {
			out = append(out, k)
			continue
		}
		seen[k] = true
	}
	return out
}

func trimRoot(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
