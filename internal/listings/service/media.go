package service

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"property_catalog_backend/internal/adapters/storage"
	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/internal/listings/transport"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/sanitize"
)

const msgStorageDisabled = "media storage is not configured"

func mediaFolder(listingID uuid.UUID, kind string) string {
	return path.Join("listings", listingID.String(), kind)
}

func validateMediaKind(kind, contentType string) error {
	switch kind {
	case transport.MediaKindImages:
		if !storage.IsImageContentType(contentType) {
			return apperr.Validation("images must have an image content type")
		}
	case transport.MediaKindDocuments:
		if storage.IsImageContentType(contentType) {
			return apperr.Validation("documents must not be images")
		}
	default:
		return apperr.Validation("unknown media kind")
	}
	return nil
}

// PresignMedia returns a presigned upload URL for a listing image or document.
func (s *Service) PresignMedia(ctx context.Context, id uuid.UUID, req transport.PresignMediaRequest, caller domain.Caller) (transport.PresignMediaResponse, error) {
	if s.storage == nil {
		return transport.PresignMediaResponse{}, apperr.BadRequest(msgStorageDisabled)
	}
	l, err := s.loadManaged(ctx, id, caller)
	if err != nil {
		return transport.PresignMediaResponse{}, err
	}
	if err := validateMediaKind(req.Kind, req.ContentType); err != nil {
		return transport.PresignMediaResponse{}, err
	}
	if err := s.storage.ValidateContentType(req.ContentType); err != nil {
		return transport.PresignMediaResponse{}, apperr.Validation(err.Error())
	}
	if err := s.storage.ValidateFileSize(req.SizeBytes); err != nil {
		return transport.PresignMediaResponse{}, apperr.Validation(err.Error())
	}

	presigned, err := s.storage.GenerateUploadURL(ctx, s.settings.MediaBucket, mediaFolder(l.ID, req.Kind), req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		return transport.PresignMediaResponse{}, apperr.Opaque(err, "listings.PresignMedia", "failed to generate upload url")
	}

	return transport.PresignMediaResponse{
		UploadURL: presigned.URL,
		FileKey:   presigned.FileKey,
		ExpiresAt: presigned.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// AttachMedia appends an uploaded file reference to the listing.
func (s *Service) AttachMedia(ctx context.Context, id uuid.UUID, req transport.AttachMediaRequest, caller domain.Caller) (transport.ListingResponse, error) {
	if s.storage == nil {
		return transport.ListingResponse{}, apperr.BadRequest(msgStorageDisabled)
	}
	l, err := s.loadManaged(ctx, id, caller)
	if err != nil {
		return transport.ListingResponse{}, err
	}

	folder := mediaFolder(l.ID, req.Kind) + "/"
	if !strings.HasPrefix(req.FileKey, folder) || strings.Contains(req.FileKey, "..") {
		return transport.ListingResponse{}, apperr.Validation("file key does not belong to this listing")
	}

	media := domain.Media{
		URL:     s.storage.ObjectURL(s.settings.MediaBucket, req.FileKey),
		Caption: sanitize.Line(req.Caption),
	}
	switch req.Kind {
	case transport.MediaKindImages:
		l.Images = append(l.Images, media)
	case transport.MediaKindDocuments:
		l.Documents = append(l.Documents, media)
	default:
		return transport.ListingResponse{}, apperr.Validation("unknown media kind")
	}

	updated, err := s.repo.Update(ctx, l)
	if err != nil {
		return transport.ListingResponse{}, apperr.Opaque(err, "listings.AttachMedia", msgSaveFailed)
	}

	s.log.Info("listing media attached", "id", id, "kind", req.Kind, "fileKey", req.FileKey)
	return transport.ToListingResponse(updated), nil
}
