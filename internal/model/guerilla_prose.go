package model

// GuerillaProse is a short post combining a picture with a text of at most
// 333 characters. Date is assigned by the store at creation time and holds
// a millisecond UNIX timestamp.
type GuerillaProse struct {
	ID       int64  `db:"id" json:"id"`
	Text     string `db:"text" json:"text"`
	ImageURL string `db:"image_url" json:"imageUrl"`
	Label    string `db:"label" json:"label"`
	UserID   int64  `db:"user_id" json:"userId"`
	Date     int64  `db:"date" json:"date"`
}
