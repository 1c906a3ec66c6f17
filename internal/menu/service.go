package menu

import (
	"context"
	"strings"

	"menuhub/internal/storage"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImageBridge stores image blobs and signs download URLs for them.
type ImageBridge interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	GetDownloadURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// maxSigners caps concurrent presign calls per combine-info request.
const maxSigners = 8

type Service struct {
	repo   Repository
	images ImageBridge
	log    *zap.Logger
}

func NewService(repo Repository, images ImageBridge, log *zap.Logger) *Service {
	return &Service{repo: repo, images: images, log: log}
}

// --------------------------------------------------
// Create menu: upload image, then insert the row
// --------------------------------------------------
func (s *Service) CreateMenu(ctx context.Context, id int64, name, image string) (*MenusInfo, error) {
	if id <= 0 {
		return nil, invalid("id", "id must be a positive integer")
	}
	if strings.TrimSpace(name) == "" {
		return nil, missing("name")
	}

	key, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	info := MenusInfo{Name: name, Image: key}
	if err := s.repo.CreateMenu(ctx, id, info); err != nil {
		s.releaseImage(ctx, key, "create menu failed")
		return nil, err
	}

	s.log.Info("menu created", zap.Int64("menu_id", id), zap.String("image", key))
	return &info, nil
}

// --------------------------------------------------
// Save categories
// --------------------------------------------------
func (s *Service) SaveCategories(ctx context.Context, id int64, names []string) ([]Category, error) {
	if id <= 0 {
		return nil, invalid("id", "id must be a positive integer")
	}
	return s.repo.SetCategories(ctx, id, names)
}

// --------------------------------------------------
// Add or replace a dish
// --------------------------------------------------
func (s *Service) AddDish(ctx context.Context, menuID int64, name, image, categoryName string) (*Dish, error) {
	if menuID <= 0 {
		return nil, invalid("menusId", "menusId must be a positive integer")
	}
	var fields []string
	if strings.TrimSpace(name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(categoryName) == "" {
		fields = append(fields, "categoryName")
	}
	if len(fields) > 0 {
		return nil, missing(fields...)
	}

	key, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	dish := Dish{Name: name, Image: key, CategoryName: categoryName}
	replaced, err := s.repo.AddOrUpdateDish(ctx, menuID, dish)
	if err != nil {
		s.releaseImage(ctx, key, "add dish failed")
		return nil, err
	}

	if replaced != "" && replaced != key {
		s.releaseImage(ctx, replaced, "dish replaced")
	}

	s.log.Info("dish saved",
		zap.Int64("menu_id", menuID),
		zap.String("dish", name),
		zap.Bool("replaced", replaced != ""),
	)
	return &dish, nil
}

// --------------------------------------------------
// Delete a dish and release its image
// --------------------------------------------------
func (s *Service) DeleteDish(ctx context.Context, menuID int64, name string) error {
	if menuID <= 0 {
		return invalid("menusId", "menusId must be a positive integer")
	}

	key, err := s.repo.RemoveDish(ctx, menuID, name)
	if err != nil {
		return err
	}

	// the row is already consistent; a failed delete only leaves an orphan
	s.releaseImage(ctx, key, "dish deleted")
	s.log.Info("dish deleted", zap.Int64("menu_id", menuID), zap.String("dish", name))
	return nil
}

// --------------------------------------------------
// Combine info: menu + categories + dishes, URLs resolved
// --------------------------------------------------
func (s *Service) GetCombineInfo(ctx context.Context, id int64) (*CombineInfo, error) {
	m, err := s.repo.GetMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &CombineInfo{
		Menu:       CombineMenu{ID: m.ID, Name: m.MenusInfo.Name},
		Categories: m.Categories,
		Dishes:     make([]Dish, len(m.Dishes)),
	}
	copy(out.Dishes, m.Dishes)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxSigners)

	g.Go(func() error {
		url, err := s.resolve(gctx, m.MenusInfo.Image)
		out.Menu.Image = url
		return err
	})
	for i := range out.Dishes {
		i := i
		g.Go(func() error {
			url, err := s.resolve(gctx, out.Dishes[i].Image)
			out.Dishes[i].Image = url
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// resolve signs key. A key without a stored object resolves to "".
func (s *Service) resolve(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	url, err := s.images.GetDownloadURL(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			s.log.Warn("image missing from storage", zap.String("key", key))
			return "", nil
		}
		return "", err
	}
	return url, nil
}

func (s *Service) uploadImage(ctx context.Context, payload string) (string, error) {
	if payload == "" {
		return "", missing("image")
	}
	img, err := storage.DecodeImage(payload)
	if err != nil {
		return "", invalid("image", err.Error())
	}
	return s.images.Put(ctx, img.Data, img.ContentType)
}

func (s *Service) releaseImage(ctx context.Context, key, reason string) {
	if err := s.images.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.Warn("failed to release image",
			zap.String("key", key),
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
}
