package handlers

import (
	"strings"

	"github.com/iudanet/medkeeper/internal/models"
	"github.com/iudanet/medkeeper/internal/server/storage"
	"github.com/iudanet/medkeeper/internal/validation"
	"github.com/iudanet/medkeeper/pkg/api"
)

// recordFromCreate проверяет тело POST /records
func recordFromCreate(req *api.CreateRecordRequest) (*storage.Record, error) {
	if err := validation.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}

	fields := models.Fields{
		Name:     strings.TrimSpace(req.Name),
		Dose:     strings.TrimSpace(req.Dose),
		Form:     strings.TrimSpace(req.Form),
		Expiry:   strings.TrimSpace(req.Expiry),
		PhotoURI: strings.TrimSpace(req.PhotoURI),
	}
	if err := validation.ValidateFields(fields); err != nil {
		return nil, err
	}

	return &storage.Record{
		UserID:    req.UserID,
		ClientRef: strings.TrimSpace(req.ClientRef),
		Fields:    fields,
	}, nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

// patchFromUpdate проверяет тело PATCH /records/{id}.
// Пустой expiry или photoUri очищает поле, пустой name запрещен.
func patchFromUpdate(req *api.UpdateRecordRequest) (storage.RecordPatch, error) {
	patch := storage.RecordPatch{
		Name:     trimmed(req.Name),
		Dose:     trimmed(req.Dose),
		Form:     trimmed(req.Form),
		Expiry:   trimmed(req.Expiry),
		PhotoURI: trimmed(req.PhotoURI),
	}

	checks := []struct {
		value *string
		check func(string) error
	}{
		{patch.Name, validation.ValidateName},
		{patch.Dose, func(s string) error { return validation.ValidateShort("dose", s) }},
		{patch.Form, func(s string) error { return validation.ValidateShort("form", s) }},
		{patch.Expiry, validation.ValidateExpiry},
		{patch.PhotoURI, validation.ValidatePhotoURI},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := c.check(*c.value); err != nil {
			return patch, err
		}
	}

	return patch, nil
}

func toResponse(rec *storage.Record) api.RecordResponse {
	return api.RecordResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Dose:      rec.Dose,
		Form:      rec.Form,
		Expiry:    rec.Expiry,
		PhotoURI:  rec.PhotoURI,
		ClientRef: rec.ClientRef,
	}
}
