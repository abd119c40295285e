package models

import (
	"net/url"
	"strings"
	"time"
)

// Fields содержит пользовательские поля записи об упаковке лекарства.
type Fields struct {
	Name     string `json:"name"`      // Name название препарата
	Dose     string `json:"dose"`      // Dose дозировка, например "500 mg"
	Form     string `json:"form"`      // Form форма выпуска: tablet, syrup, ...
	Expiry   string `json:"expiry"`    // Expiry срок годности, YYYY-MM-DD или YYYY-MM
	PhotoURI string `json:"photo_uri"` // PhotoURI ссылка на фото упаковки
}

// Record представляет запись в локальном хранилище.
// RemoteID == nil означает, что запись ещё ни разу не была загружена на сервер.
type Record struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	RemoteID  *int64     `json:"remote_id,omitempty"` // RemoteID идентификатор, выданный сервером
	SyncedAt  *time.Time `json:"synced_at,omitempty"` // SyncedAt время последней успешной синхронизации
	ClientRef string     `json:"client_ref"`          // ClientRef UUID, по которому сервер дедуплицирует повторный create
	Fields
	LocalID int64 `json:"local_id"` // LocalID идентификатор в локальной БД
	UserID  int64 `json:"user_id"`  // UserID владелец записи
}

// IsPending reports whether the record still awaits its first successful create.
func (r *Record) IsPending() bool {
	return r.RemoteID == nil
}

// Tombstone фиксирует локальное удаление записи, уже известной серверу.
// Пока tombstone существует, download не должен воссоздать запись.
type Tombstone struct {
	DeletedAt time.Time `json:"deleted_at"`
	RemoteID  int64     `json:"remote_id"`
	UserID    int64     `json:"user_id"`
}

// Accepted expiry layouts.
const (
	ExpiryDayLayout   = "2006-01-02"
	ExpiryMonthLayout = "2006-01"
)

// ValidExpiry reports whether s is a real date in one of the accepted layouts.
// Sentinels produced by label recognition ("Not visible", "N/A", ...) are not.
func ValidExpiry(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := time.Parse(ExpiryDayLayout, s); err == nil {
		return true
	}
	if _, err := time.Parse(ExpiryMonthLayout, s); err == nil {
		return true
	}
	return false
}

// IsNetworkURL reports whether s is an absolute http(s) URL with a host.
// Device-local references (file://, content://, bare paths) are not.
func IsNetworkURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Clean returns a copy of f that is safe to send to the record service:
// invalid expiry values and non-network photo references are dropped,
// the rest is trimmed.
func (f Fields) Clean() Fields {
	out := Fields{
		Name: strings.TrimSpace(f.Name),
		Dose: strings.TrimSpace(f.Dose),
		Form: strings.TrimSpace(f.Form),
	}
	if ValidExpiry(f.Expiry) {
		out.Expiry = strings.TrimSpace(f.Expiry)
	}
	if IsNetworkURL(f.PhotoURI) {
		out.PhotoURI = strings.TrimSpace(f.PhotoURI)
	}
	return out
}

// MergeRemote applies remote fields on top of local ones.
// A remote photo reference that is not a network URL never replaces a
// non-empty local one; otherwise remote wins.
func MergeRemote(local, remote Fields) Fields {
	merged := remote
	if !IsNetworkURL(remote.PhotoURI) {
		merged.PhotoURI = ""
		if local.PhotoURI != "" {
			merged.PhotoURI = local.PhotoURI
		}
	}
	return merged
}

// DiffersFromRemote сообщает, изменит ли применение remote локальную запись
// с точки зрения сервера. Обе стороны проходят через Clean, поэтому
// отброшенные при upload значения (sentinel в expiry, локальный путь к фото)
// не считаются расхождением.
func DiffersFromRemote(local, remote Fields) bool {
	return MergeRemote(local, remote).Clean() != local.Clean()
}
