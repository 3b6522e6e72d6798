package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateDatabase, DatabaseConfig{})

	return v
}

// validateDatabase checks the DSN against the selected driver. Both drivers
// accept any string at open time and fail on first use, which is too late.
func validateDatabase(sl validator.StructLevel) {
	db, ok := sl.Current().Interface().(DatabaseConfig)
	if !ok || db.DSN == "" {
		return
	}

	switch db.Driver {
	case "postgres":
		if !isPostgresDSN(db.DSN) {
			sl.ReportError(db.DSN, "DSN", "DSN", "postgres_dsn", "")
		}
	case "sqlite":
		// Every pooled connection to :memory: opens its own empty database.
		if strings.Contains(db.DSN, ":memory:") && db.MaxOpenConns > 1 {
			sl.ReportError(db.DSN, "DSN", "DSN", "sqlite_memory", "")
		}
	}
}

// isPostgresDSN accepts whatever the pgx driver will accept: a URL or any
// libpq keyword/value string, including socket-only forms without host=.
func isPostgresDSN(dsn string) bool {
	_, err := pgconn.ParseConfig(dsn)
	return err == nil
}

// Validate checks the whole configuration. The service refuses to start on
// any failure.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "ltfield":
		return fmt.Sprintf("%s must be less than %s", field, siblingPath(field, e.Param()))
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, siblingPath(field, e.Param()))
	case "postgres_dsn":
		return fmt.Sprintf("%s must be a postgres:// URL or a key=value connection string", field)
	case "sqlite_memory":
		return fmt.Sprintf("%s is in-memory and needs database.max_open_conns = 1", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath turns "Config.Database.MaxOpenConns" into
// "database.maxopenconns".
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	return strings.ToLower(strings.Join(parts, "."))
}

// siblingPath names param as a field next to field.
func siblingPath(field, param string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[:i+1] + strings.ToLower(param)
	}

	return strings.ToLower(param)
}
