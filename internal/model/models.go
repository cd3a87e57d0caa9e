package model

// Place 景点目录行（一行同时带一条用户评分，与源表结构一致）
type Place struct {
	City        string  `json:"city"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BestTime    string  `json:"best_time_to_visit"`
	UserID      int     `json:"user_id"`
	UserRating  float64 `json:"user_rating"`
	Distance    string  `json:"distance"`
}

// Hotel 酒店目录行
type Hotel struct {
	City                string  `json:"city"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	PropertyType        string  `json:"property_type"`
	StarRating          float64 `json:"star_rating"`
	SiteReviewRating    float64 `json:"site_review_rating"`
	GuestRecommendation float64 `json:"guest_recommendation"`
	PointOfInterest     string  `json:"point_of_interest"`
}

// User 用户记录（邮箱为大小写不敏感的唯一键）
type User struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	PlacesVisited string  `json:"places_visited,omitempty"`
	RatingsGiven  float64 `json:"ratings_given,omitempty"`
}

// Rating (用户, 景点, 评分) 三元组，协同矩阵的原始输入
type Rating struct {
	UserID    int
	PlaceName string
	Value     float64
}

// PlaceRecommendation 推荐结果中的一条景点记录
type PlaceRecommendation struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	BestTime    string  `json:"best_time_to_visit"`
	Distance    string  `json:"distance"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason,omitempty"`
}

// HotelRecommendation 推荐结果中的一条酒店记录
type HotelRecommendation struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	StarRating      float64 `json:"star_rating"`
	PropertyType    string  `json:"property_type"`
	PointOfInterest string  `json:"point_of_interest"`
	Score           float64 `json:"score"`
}
