package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	repo "github.com/oksasatya/restaurant-api/internal/domain/repository"
	"github.com/oksasatya/restaurant-api/internal/validator"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

// SearchIndex mirrors restaurants into a full-text index.
type SearchIndex interface {
	IndexRestaurant(ctx context.Context, r *entity.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int64) error
	SearchRestaurants(ctx context.Context, q string, size int) ([]dto.RestaurantSearchHit, error)
}

// ObjectStore uploads files and returns their public URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

type RestaurantService struct {
	Repo   repo.RestaurantRepository
	Dishes repo.DishRepository
	Query  *validator.RestaurantQuery
	Index  SearchIndex
	Logos  ObjectStore
	Logger *logrus.Logger
}

func NewRestaurantService(restaurants repo.RestaurantRepository, dishes repo.DishRepository, index SearchIndex, logos ObjectStore, logger *logrus.Logger) *RestaurantService {
	return &RestaurantService{
		Repo:   restaurants,
		Dishes: dishes,
		Query:  validator.NewRestaurantQuery(),
		Index:  index,
		Logos:  logos,
		Logger: logger,
	}
}

func (s *RestaurantService) Create(ctx context.Context, p authorization.Principal, in dto.CreateRestaurantRequest) (int64, error) {
	if err := authorization.Authorize(p, nil, authorization.OperationCreate); err != nil {
		return 0, err
	}
	r := &entity.Restaurant{
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		HasDelivery:   in.HasDelivery,
		ContactEmail:  in.ContactEmail,
		ContactNumber: in.ContactNumber,
		Address: entity.Address{
			City:       in.City,
			Street:     in.Street,
			PostalCode: in.PostalCode,
		},
		CreatedByID: p.ID,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		return 0, fmt.Errorf("create restaurant: %w", err)
	}
	s.index(ctx, r)
	return r.ID, nil
}

func (s *RestaurantService) GetByID(ctx context.Context, id int64) (*dto.RestaurantResponse, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dishes, err := s.Dishes.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	r.Dishes = dishes
	out := dto.ToRestaurantResponse(r)
	return &out, nil
}

// List validates q and returns one page of restaurants.
func (s *RestaurantService) List(ctx context.Context, q dto.RestaurantQuery) (dto.PagedResult[dto.RestaurantResponse], error) {
	if vs := s.Query.Validate(q); len(vs) > 0 {
		return dto.PagedResult[dto.RestaurantResponse]{}, invalid(vs...)
	}
	query := q.ToEntity()
	rows, total, err := s.Repo.List(ctx, query)
	if err != nil {
		return dto.PagedResult[dto.RestaurantResponse]{}, fmt.Errorf("list restaurants: %w", err)
	}
	items := make([]dto.RestaurantResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToRestaurantResponse(&rows[i]))
	}
	return dto.NewPagedResult(items, total, query.PageSize, query.PageNumber), nil
}

func (s *RestaurantService) Update(ctx context.Context, p authorization.Principal, id int64, in dto.UpdateRestaurantRequest) error {
	r, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorization.Authorize(p, r, authorization.OperationUpdate); err != nil {
		return err
	}
	r.Name = in.Name
	r.Description = in.Description
	r.HasDelivery = in.HasDelivery
	if err := s.Repo.Update(ctx, r); err != nil {
		return s.mapErr("update restaurant", err)
	}
	s.index(ctx, r)
	return nil
}

// Delete removes the restaurant; its dishes go with it.
func (s *RestaurantService) Delete(ctx context.Context, p authorization.Principal, id int64) error {
	r, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorization.Authorize(p, r, authorization.OperationDelete); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return s.mapErr("delete restaurant", err)
	}
	if s.Index != nil {
		if err := s.Index.DeleteRestaurant(ctx, id); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("restaurant_id", id).Warn("search index delete failed")
		}
	}
	return nil
}

// UploadLogo stores an image for the restaurant and records its URL.
func (s *RestaurantService) UploadLogo(ctx context.Context, p authorization.Principal, id int64, filename, contentType string, body io.Reader) (string, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	if err := authorization.Authorize(p, r, authorization.OperationUpdate); err != nil {
		return "", err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", invalid(validation.FieldViolation{Field: "file", Message: "must be an image"})
	}
	if s.Logos == nil {
		return "", fmt.Errorf("logo storage: %w", ErrUnavailable)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("restaurants/%d/logo-%s%s", id, uuid.NewString(), ext)
	url, err := s.Logos.Upload(ctx, objectPath, contentType, body)
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}
	r.LogoURL = url
	if err := s.Repo.Update(ctx, r); err != nil {
		return "", s.mapErr("update restaurant", err)
	}
	return url, nil
}

// Search queries the full-text index; without one it returns no hits.
func (s *RestaurantService) Search(ctx context.Context, q string, size int) ([]dto.RestaurantSearchHit, error) {
	if s.Index == nil || strings.TrimSpace(q) == "" {
		return []dto.RestaurantSearchHit{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	return s.Index.SearchRestaurants(ctx, q, size)
}

func (s *RestaurantService) load(ctx context.Context, id int64) (*entity.Restaurant, error) {
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapErr("get restaurant", err)
	}
	return r, nil
}

func (s *RestaurantService) mapErr(op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrRestaurantNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *RestaurantService) index(ctx context.Context, r *entity.Restaurant) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexRestaurant(ctx, r); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("restaurant_id", r.ID).Warn("search index failed")
	}
}
