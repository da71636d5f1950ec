package models

import "time"

// Collection keys. The persisted layout is internal state behind the
// storage port; these names are kept stable so existing data files
// survive upgrades.
const (
	KeyGames           = "managedGames"
	KeyCategories      = "gameCategories"
	KeyComments        = "gameComments"
	KeyUsers           = "users"
	KeyAnnouncements   = "announcements"
	KeyCarouselItems   = "carouselItems"
	KeySiteSettings    = "siteSettings"
	KeyContactRequests = "contactRequests"
	KeyAdminLogs       = "adminLogs"
)

// User roles.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleVIP       = "vip"
	RoleUser      = "user"
)

// User account statuses.
const (
	StatusActive  = "active"
	StatusPending = "pending"
	StatusBlocked = "blocked"
)

// PermissionAll grants every permission when present in a user's
// permission list.
const PermissionAll = "all"

// Contact request statuses.
const (
	ContactPending    = "pending"
	ContactProcessing = "processing"
	ContactResolved   = "resolved"
	ContactClosed     = "closed"
)

type Game struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	Rating        float64  `json:"rating"`
	Platform      string   `json:"platform"`
	ImageURL      string   `json:"image_url"`
	TrendingScore int      `json:"trending_score"`
	DownloadURL   string   `json:"download_url"`
	Version       int      `json:"version"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"` // display value, not recomputed from games
	Version     int    `json:"version"`
}

type Comment struct {
	ID        int       `json:"id"`
	GameID    int       `json:"game_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"` // 1-5
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	Version   int       `json:"version"`
}

// User is the stored shape. PasswordHash is serialized into the
// collection but must never reach API responses; handlers convert to
// PublicUser before encoding.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int       `json:"version"`
}

// PublicUser is the API-facing view of a User.
type PublicUser struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	Version     int       `json:"version"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		Version:     u.Version,
	}
}

// HasPermission reports whether the user may perform the named action.
// Admins and users holding the "all" permission pass every check.
func (u User) HasPermission(perm string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == PermissionAll || p == perm {
			return true
		}
	}
	return false
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // HTML fragment rendered by the client
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	Version   int       `json:"version"`
}

// ActiveAt reports whether the announcement should be shown at t.
func (a Announcement) ActiveAt(t time.Time) bool {
	return a.IsActive && !t.Before(a.StartDate) && !t.After(a.EndDate)
}

type CarouselItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
	Active   bool   `json:"active"`
	Order    int    `json:"order"`
	Version  int    `json:"version"`
}

type SiteSettings struct {
	SiteName            string `json:"site_name"`
	Description         string `json:"description"`
	ContactEmail        string `json:"contact_email"`
	MaintenanceMode     bool   `json:"maintenance_mode"`
	CommentsEnabled     bool   `json:"comments_enabled"`
	RegistrationEnabled bool   `json:"registration_enabled"`
	FeaturedGameID      int    `json:"featured_game_id"`
	Version             int    `json:"version"`
}

type ContactResponse struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactRequest struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Responses []ContactResponse `json:"responses"`
	CreatedAt time.Time         `json:"created_at"`
	Version   int               `json:"version"`
}

// LogEntry is an append-only audit record. Entries have no id; the log
// is only ever appended to or cleared in bulk.
type LogEntry struct {
	Action    string    `json:"action"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
}

type Stats struct {
	Games           int `json:"games"`
	Categories      int `json:"categories"`
	Users           int `json:"users"`
	Comments        int `json:"comments"`
	PendingComments int `json:"pending_comments"`
	OpenRequests    int `json:"open_requests"`
	LogEntries      int `json:"log_entries"`
}
