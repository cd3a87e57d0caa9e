package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlaces(t *testing.T) {
	path := writeCSV(t, "places.csv", `City_Name,Place_Name,Place_desc,Category,Best_time_to_visit,User_Id,User_Rating,Distance
Delhi,Red Fort,mughal fort,Forts,Winter,1,4.2,5 km
Delhi,Red Fort,duplicate row,Forts,Summer,2,1.0,9 km
Delhi,Lotus Temple,,Temples,,2,4.6,
Mumbai,Juhu Beach,sandy beach,Beaches,Evening,3,4.1,12 km
`)
	repo := NewCatalogRepository(path, "")

	places, err := repo.LoadPlaces()
	require.NoError(t, err)
	require.Len(t, places, 3, "(城市, 景点名) 重复行只保留首条")

	first := places[0]
	assert.Equal(t, "Delhi", first.City)
	assert.Equal(t, "Red Fort", first.Name)
	assert.Equal(t, "mughal fort", first.Description, "重复行保留的是首条内容")
	assert.Equal(t, 1, first.UserID)
	assert.Equal(t, 4.2, first.UserRating)
	assert.Equal(t, "5 km", first.Distance)

	// 缺失文本列补空串，数值列补零值
	lotus := places[1]
	assert.Equal(t, "", lotus.Description)
	assert.Equal(t, "", lotus.BestTime)
	assert.Equal(t, "", lotus.Distance)
	assert.Equal(t, 4.6, lotus.UserRating)
}

func TestLoadPlaces_ColumnOrderIndependent(t *testing.T) {
	// 按表头解析而非列序
	path := writeCSV(t, "places.csv", `Place_Name,User_Rating,City_Name,Category
Red Fort,4.2,Delhi,Forts
`)
	repo := NewCatalogRepository(path, "")

	places, err := repo.LoadPlaces()
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Delhi", places[0].City)
	assert.Equal(t, "Red Fort", places[0].Name)
	assert.Equal(t, 4.2, places[0].UserRating)
}

func TestLoadPlaces_MissingFile(t *testing.T) {
	repo := NewCatalogRepository(filepath.Join(t.TempDir(), "nope.csv"), "")

	_, err := repo.LoadPlaces()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataLoad)
}

func TestLoadPlaces_MissingRequiredColumns(t *testing.T) {
	path := writeCSV(t, "places.csv", `Foo,Bar
1,2
`)
	repo := NewCatalogRepository(path, "")

	_, err := repo.LoadPlaces()
	assert.ErrorIs(t, err, ErrDataLoad)
}

func TestLoadHotels(t *testing.T) {
	path := writeCSV(t, "hotels.csv", `city,Hotel_Name,hotel_description,property_type,hotel_star_rating,site_review_rating,guest_recommendation,point_of_interest
Delhi,Taj Palace,luxury stay,Hotel,5,4.5,95,India Gate
Mumbai,Sea View,,,4,4.8,97,
`)
	repo := NewCatalogRepository("", path)

	hotels, err := repo.LoadHotels()
	require.NoError(t, err)
	require.Len(t, hotels, 2)

	taj := hotels[0]
	assert.Equal(t, "Delhi", taj.City)
	assert.Equal(t, "Taj Palace", taj.Name)
	assert.Equal(t, 5.0, taj.StarRating)
	assert.Equal(t, 4.5, taj.SiteReviewRating)
	assert.Equal(t, 95.0, taj.GuestRecommendation)
	assert.Equal(t, "India Gate", taj.PointOfInterest)

	sea := hotels[1]
	assert.Equal(t, "", sea.Description)
	assert.Equal(t, "", sea.PropertyType)
}

func TestLoadHotels_MissingFile(t *testing.T) {
	repo := NewCatalogRepository("", filepath.Join(t.TempDir(), "nope.csv"))

	_, err := repo.LoadHotels()
	assert.ErrorIs(t, err, ErrDataLoad)
}
