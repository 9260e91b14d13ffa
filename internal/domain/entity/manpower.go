package entity

// ManpowerLog registro diario de despliegue de un empleado: qué rol cumplió
// ese día, en qué proyecto y bajo qué grupo de trabajo. El cargo del día puede
// diferir del cargo de planta.
type ManpowerLog struct {
	ID              string `json:"id"`
	BadgeNumber     string `json:"badgeNumber"`
	Date            string `json:"date"` // "2006-01-02"
	Project         string `json:"project"`
	JobTitle        string `json:"jobTitle"`
	WorkGroup       string `json:"workGroup"`
	WorkDescription string `json:"workDescription"`
}
