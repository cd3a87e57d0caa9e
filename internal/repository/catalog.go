package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/user/tripmate/internal/model"
)

// ErrDataLoad 目录数据缺失或格式错误（景点/酒店目录是启动硬依赖）
var ErrDataLoad = errors.New("数据加载失败")

// CatalogRepository 景点/酒店目录仓库，启动时加载一次，之后只读
type CatalogRepository struct {
	placesPath string
	hotelsPath string
}

func NewCatalogRepository(placesPath, hotelsPath string) *CatalogRepository {
	return &CatalogRepository{
		placesPath: placesPath,
		hotelsPath: hotelsPath,
	}
}

// LoadPlaces 读取景点目录：按 (城市, 景点名) 去重保留首条，缺失文本列补空串
func (r *CatalogRepository) LoadPlaces() ([]model.Place, error) {
	records, header, err := readCSV(r.placesPath)
	if err != nil {
		return nil, err
	}

	city := header.index("City_Name")
	name := header.index("Place_Name")
	desc := header.index("Place_desc")
	category := header.index("Category")
	bestTime := header.index("Best_time_to_visit")
	userID := header.index("User_Id")
	rating := header.index("User_Rating")
	distance := header.index("Distance")
	if city < 0 || name < 0 {
		return nil, fmt.Errorf("%w: %s 缺少 City_Name/Place_Name 列", ErrDataLoad, r.placesPath)
	}

	places := make([]model.Place, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		p := model.Place{
			City:        field(rec, city),
			Name:        field(rec, name),
			Description: field(rec, desc),
			Category:    field(rec, category),
			BestTime:    field(rec, bestTime),
			Distance:    field(rec, distance),
		}
		if p.City == "" && p.Name == "" {
			continue
		}
		// (城市, 景点名) 去重，保留首次出现
		key := p.City + "\x00" + p.Name
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		p.UserID, _ = strconv.Atoi(field(rec, userID))
		p.UserRating, _ = strconv.ParseFloat(field(rec, rating), 64)
		places = append(places, p)
	}
	return places, nil
}

// LoadHotels 读取酒店目录，缺失的描述/物业类型补空串
func (r *CatalogRepository) LoadHotels() ([]model.Hotel, error) {
	records, header, err := readCSV(r.hotelsPath)
	if err != nil {
		return nil, err
	}

	city := header.index("city")
	name := header.index("Hotel_Name")
	desc := header.index("hotel_description")
	propType := header.index("property_type")
	stars := header.index("hotel_star_rating")
	siteRating := header.index("site_review_rating")
	guestRec := header.index("guest_recommendation")
	poi := header.index("point_of_interest")
	if city < 0 || name < 0 {
		return nil, fmt.Errorf("%w: %s 缺少 city/Hotel_Name 列", ErrDataLoad, r.hotelsPath)
	}

	hotels := make([]model.Hotel, 0, len(records))
	for _, rec := range records {
		h := model.Hotel{
			City:            field(rec, city),
			Name:            field(rec, name),
			Description:     field(rec, desc),
			PropertyType:    field(rec, propType),
			PointOfInterest: field(rec, poi),
		}
		if h.City == "" && h.Name == "" {
			continue
		}
		h.StarRating, _ = strconv.ParseFloat(field(rec, stars), 64)
		h.SiteReviewRating, _ = strconv.ParseFloat(field(rec, siteRating), 64)
		h.GuestRecommendation, _ = strconv.ParseFloat(field(rec, guestRec), 64)
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// csvHeader 列名到下标的映射（按表头实际顺序解析，不假定列序）
type csvHeader map[string]int

func (h csvHeader) index(name string) int {
	if i, ok := h[name]; ok {
		return i
	}
	return -1
}

// readCSV 读取整个 CSV 文件，返回数据行和表头映射
func readCSV(path string) ([][]string, csvHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: 打开 %s: %v", ErrDataLoad, path, err)
	}
	defer f.Close()

	rd := csv.NewReader(bufio.NewReader(f))
	rd.FieldsPerRecord = -1

	head, err := rd.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: 读取 %s 表头: %v", ErrDataLoad, path, err)
	}
	header := make(csvHeader, len(head))
	for i, col := range head {
		header[strings.TrimSpace(col)] = i
	}

	var records [][]string
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: 读取 %s: %v", ErrDataLoad, path, err)
		}
		records = append(records, rec)
	}
	return records, header, nil
}

// field 取指定列的值，列不存在或行过短时返回空串
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
