package api

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}

	location := options.Location
	if location == nil {
		location = time.UTC
	}
	sessionTTL := options.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	maxAttempts := options.LoginMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultLoginMaxAttempts
	}
	window := options.LoginWindow
	if window <= 0 {
		window = defaultLoginWindow
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(options.SecretKey),
		location:     location,
		cookieSecure: options.CookieSecure,
		sessionTTL:   sessionTTL,
		logger:       logger,
		metrics:      options.Metrics,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(maxAttempts, window),
	}
	return handler.withDependencies(database), nil
}
