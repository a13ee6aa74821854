package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrInvalidUser is returned when a user record fails validation.
var ErrInvalidUser = errors.New("invalid user record")

var validate = validator.New()

// misplacedRoleFields lists role-specific fields of u that do not match its role.
// Only the fields selected by profession and jobs are checked.
func misplacedRoleFields(u User, profession, jobs bool) []string {
	var out []string
	if profession && u.Profession != "" && u.Type != RoleWorker {
		out = append(out, "profession(worker_only)")
	}
	if jobs && u.JobsPosted != nil && u.Type != RoleEmployer {
		out = append(out, "jobsPosted(employer_only)")
	}
	return out
}

// invalidUser folds validator errors and role errors into one ErrInvalidUser.
func invalidUser(err error, roleErrs []string) error {
	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs)+len(roleErrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	fields = append(fields, roleErrs...)

	if len(fields) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidUser, strings.Join(fields, ", "))
}

// Validate checks enum values, ranges and role-specific fields.
func (u User) Validate() error {
	return invalidUser(validate.Struct(u), misplacedRoleFields(u, true, true))
}

// Validate checks the fields p sets, as they appear in merged.
// Fields the patch does not touch are not checked again.
func (p UserPatch) Validate(merged User) error {
	var fields []string
	if p.Type != nil {
		fields = append(fields, "Type")
	}
	if p.Rating != nil {
		fields = append(fields, "Rating")
	}
	if p.Status != nil {
		fields = append(fields, "Status")
	}
	if p.JobsPosted != nil {
		fields = append(fields, "JobsPosted")
	}

	var err error
	if len(fields) > 0 {
		err = validate.StructPartial(merged, fields...)
	}
	return invalidUser(err, misplacedRoleFields(merged, p.Profession != nil, p.JobsPosted != nil))
}

// ErrInvalidVideo is returned for a skill video that is not a base64 data URI.
var ErrInvalidVideo = errors.New("skill video must be a base64 data URI")

// ValidateSkillVideo checks that dataURI is a base64 encoded data URI.
func ValidateSkillVideo(dataURI string) error {
	if err := validate.Var(dataURI, "required,datauri"); err != nil {
		return ErrInvalidVideo
	}
	return nil
}
