package service

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog/log"

	"agentcard/internal/domains/agent/model"
	"agentcard/internal/domains/agent/repository"
	"agentcard/internal/infrastructure/storage"
)

// Upload folder hints, part of the generated object keys.
const (
	folderPhotos    = "photos"
	folderGallery   = "gallery"
	folderDocuments = "documents"
)

type agentService struct {
	repo     repository.Repository
	uploader storage.Uploader
}

func NewAgentService(repo repository.Repository, uploader storage.Uploader) Service {
	return &agentService{
		repo:     repo,
		uploader: uploader,
	}
}

func (s *agentService) List(ctx context.Context) ([]*model.Agent, error) {
	return s.repo.List(ctx)
}

func (s *agentService) GetBySlug(ctx context.Context, slug string) (*model.Agent, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewAgentNotFound(slug)
	}
	return a, nil
}

func (s *agentService) Create(ctx context.Context, form *model.AgentForm, files *model.AgentFiles) (*model.Agent, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, model.NewInvalidForm(err)
	}

	// Uniqueness check runs before any upload so a duplicate slug costs
	// nothing but a read.
	existing, err := s.repo.GetBySlug(ctx, form.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewSlugAlreadyExists(form.Slug)
	}

	a := form.ToAgent()
	s.applyUploads(ctx, a, files)

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *agentService) Update(ctx context.Context, slug string, form *model.AgentForm, files *model.AgentFiles) (*model.Agent, error) {
	existing, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// The slug is immutable after creation: a renamed slug would silently
	// break every link and QR code already in circulation.
	form.Slug = existing.Slug
	if err := form.Validate(); err != nil {
		return nil, model.NewInvalidForm(err)
	}

	a := form.ToAgent()
	a.CreatedAt = existing.CreatedAt

	// Files are sticky: carry the stored URLs forward, then let new
	// uploads overwrite the slots they target.
	a.PhotoURL = existing.PhotoURL
	a.GalleryURLs = existing.GalleryURLs
	a.Documents = existing.Documents
	s.applyUploads(ctx, a, files)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *agentService) Delete(ctx context.Context, slug string) error {
	if _, err := s.GetBySlug(ctx, slug); err != nil {
		return err
	}
	return s.repo.Delete(ctx, slug)
}

// applyUploads pushes each supplied file to the asset store and writes the
// resulting URLs onto the record. Any failed upload leaves its slot as it
// was — empty on create, the prior URL on update — and is only logged.
func (s *agentService) applyUploads(ctx context.Context, a *model.Agent, files *model.AgentFiles) {
	if files == nil {
		return
	}

	if files.Photo != nil {
		if url, ok := s.uploadFile(ctx, files.Photo, folderPhotos); ok {
			a.PhotoURL = &url
		}
	}

	// The gallery is replaced wholesale, but only when at least one new
	// gallery file was actually supplied and stored.
	if len(files.Gallery) > 0 {
		var urls []string
		for _, fh := range files.Gallery {
			if url, ok := s.uploadFile(ctx, fh, folderGallery); ok {
				urls = append(urls, url)
			}
		}
		if len(urls) > 0 {
			a.GalleryURLs = urls
		}
	}

	for i, fh := range files.Documents {
		if fh == nil {
			continue
		}
		if url, ok := s.uploadFile(ctx, fh, folderDocuments); ok {
			a.Documents[i] = &url
		}
	}
}

func (s *agentService) uploadFile(ctx context.Context, fh *multipart.FileHeader, folder string) (string, bool) {
	f, err := fh.Open()
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("failed to open uploaded file")
		return "", false
	}
	defer f.Close()

	url, err := s.uploader.Upload(ctx, f, fh.Size, fh.Filename, fh.Header.Get("Content-Type"), folder)
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Str("folder", folder).
			Msg("asset upload failed, field left unchanged")
		return "", false
	}
	return url, true
}
