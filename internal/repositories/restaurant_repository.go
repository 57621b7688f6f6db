package repositories

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"dinefind/internal/models/response_models"
)

// RestaurantRepository serves the static local dataset used as the
// fallback when the places provider is unavailable.
type RestaurantRepository interface {
	All(ctx context.Context) ([]response_models.Restaurant, error)
	Search(ctx context.Context, term, cuisine string, minRating float64) ([]response_models.Restaurant, error)
	GetByID(ctx context.Context, id int) (*response_models.Restaurant, error)
	Cuisines(ctx context.Context) ([]string, error)
}

type localRow struct {
	ID           int                      `json:"id"`
	Name         string                   `json:"name"`
	Address      string                   `json:"address"`
	Description  string                   `json:"description"`
	Cuisine      string                   `json:"cuisine"`
	Rating       float64                  `json:"rating"`
	Image        string                   `json:"image"`
	OpeningHours string                   `json:"openingHours"`
	Location     response_models.Location `json:"location"`
	PriceLevel   int                      `json:"priceLevel"`
	RatingsTotal int                      `json:"userRatingsTotal"`
}

type LocalRestaurantRepository struct {
	path string

	once    sync.Once
	rows    []localRow
	loadErr error
}

func NewLocalRestaurantRepository(path string) RestaurantRepository {
	return &LocalRestaurantRepository{path: path}
}

func (r *LocalRestaurantRepository) load() ([]localRow, error) {
	r.once.Do(func() {
		data, err := os.ReadFile(r.path)
		if err != nil {
			r.loadErr = err
			return
		}
		r.loadErr = json.Unmarshal(data, &r.rows)
	})
	return r.rows, r.loadErr
}

func toRestaurant(row localRow) response_models.Restaurant {
	return response_models.Restaurant{
		ID:               strconv.Itoa(row.ID),
		Name:             row.Name,
		Address:          row.Address,
		Description:      row.Description,
		Cuisine:          row.Cuisine,
		Rating:           row.Rating,
		Image:            row.Image,
		OpeningHours:     row.OpeningHours,
		Location:         row.Location,
		PriceLevel:       row.PriceLevel,
		UserRatingsTotal: row.RatingsTotal,
	}
}

func (r *LocalRestaurantRepository) All(_ context.Context) ([]response_models.Restaurant, error) {
	rows, err := r.load()
	if err != nil {
		return nil, err
	}

	restaurants := make([]response_models.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, toRestaurant(row))
	}
	return restaurants, nil
}

// Search applies the provided filters with AND semantics. Empty term
// and cuisine and a zero minRating each mean "no constraint".
func (r *LocalRestaurantRepository) Search(_ context.Context, term, cuisine string, minRating float64) ([]response_models.Restaurant, error) {
	rows, err := r.load()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	cuisine = strings.ToLower(cuisine)

	matched := make([]response_models.Restaurant, 0, len(rows))
	for _, row := range rows {
		if term != "" &&
			!strings.Contains(strings.ToLower(row.Name), term) &&
			!strings.Contains(strings.ToLower(row.Address), term) &&
			!strings.Contains(strings.ToLower(row.Cuisine), term) {
			continue
		}
		if cuisine != "" && strings.ToLower(row.Cuisine) != cuisine {
			continue
		}
		if row.Rating < minRating {
			continue
		}
		matched = append(matched, toRestaurant(row))
	}
	return matched, nil
}

func (r *LocalRestaurantRepository) GetByID(_ context.Context, id int) (*response_models.Restaurant, error) {
	rows, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.ID == id {
			restaurant := toRestaurant(row)
			return &restaurant, nil
		}
	}
	return nil, nil
}

// Cuisines returns the distinct cuisines present in the dataset,
// sorted. The public cuisine endpoint uses the fixed service list
// instead; this reflects the data actually on disk.
func (r *LocalRestaurantRepository) Cuisines(_ context.Context) ([]string, error) {
	rows, err := r.load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	cuisines := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Cuisine == "" || seen[row.Cuisine] {
			continue
		}
		seen[row.Cuisine] = true
		cuisines = append(cuisines, row.Cuisine)
	}
	sort.Strings(cuisines)
	return cuisines, nil
}
