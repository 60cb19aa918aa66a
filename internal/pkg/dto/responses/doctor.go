package responses

type Doctor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Speciality    string   `json:"speciality"`
	WorkAddress   string   `json:"workAddress"`
	WorkingDays   []string `json:"workingDays"`
	RatingAverage float64  `json:"ratingAverage"`
	RatingCount   int      `json:"ratingCount"`
}
