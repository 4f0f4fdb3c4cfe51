package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// RestaurantIndex keeps restaurant documents in an Elasticsearch index.
type RestaurantIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewRestaurantIndex(es *elasticsearch.Client, index string) *RestaurantIndex {
	return &RestaurantIndex{ES: es, Index: index}
}

type restaurantDoc struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	CreatedByID int64  `json:"created_by_id"`
	UpdatedAt   string `json:"updated_at"`
}

func (ix *RestaurantIndex) IndexRestaurant(ctx context.Context, r *entity.Restaurant) error {
	b, err := json.Marshal(restaurantDoc{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		City:        r.Address.City,
		CreatedByID: r.CreatedByID,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      ix.Index,
		DocumentID: strconv.FormatInt(r.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

func (ix *RestaurantIndex) DeleteRestaurant(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: ix.Index, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	// a missing document is already deleted
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// SearchRestaurants runs a multi_match over name, description, category and city.
func (ix *RestaurantIndex) SearchRestaurants(ctx context.Context, q string, size int) ([]dto.RestaurantSearchHit, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^3", "description", "category^2", "city"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := ix.ES.Search(ix.ES.Search.WithContext(c), ix.ES.Search.WithIndex(ix.Index), ix.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source restaurantDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]dto.RestaurantSearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, dto.RestaurantSearchHit{
			ID:          h.Source.ID,
			Name:        h.Source.Name,
			Description: h.Source.Description,
			Category:    h.Source.Category,
			City:        h.Source.City,
		})
	}
	return out, nil
}
