package api

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/lifeboard/internal/db"
	"github.com/terraincognita07/lifeboard/internal/metrics"
	"github.com/terraincognita07/lifeboard/internal/models"
	"github.com/terraincognita07/lifeboard/internal/services"
	"gorm.io/gorm"
)

const (
	defaultSessionTTL       = 24 * time.Hour
	defaultLoginMaxAttempts = 5
	defaultLoginWindow      = 15 * time.Minute
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	sessionTTL   time.Duration
	logger       *log.Logger
	metrics      *metrics.Metrics
	now          func() time.Time

	loginLimiter *attemptLimiter

	repositories     *db.Repositories
	authService      *services.AuthService
	areaService      *services.AreaService
	contentService   *services.ContentService
	goalService      *services.GoalService
	habitService     *services.HabitService
	taskService      *services.TaskService
	contactService   *services.ContactService
	referenceService *services.ReferenceService
	healthService    *services.HealthService
	financeService   *services.FinanceService
	entryService     *services.EntryService
	conflictService  *services.ConflictService
}

// Options configures NewHandler. Zero values fall back to defaults.
type Options struct {
	SecretKey        string
	Location         *time.Location
	CookieSecure     bool
	SessionTTL       time.Duration
	Logger           *log.Logger
	Metrics          *metrics.Metrics
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type checkinInput struct {
	CheckinDate *models.Date `json:"checkin_date"`
	Notes       string       `json:"notes"`
}
