package models

// Like - сохранённый пользователем персонаж или комикс.
// ID сериализуется как "_id": фронтенд использует его как ключ списка.
type Like struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
	Token string `json:"token"`
}

type CreateLikeRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
	Token string `json:"token"`
}

type DeleteLikeRequest struct {
	Image string `json:"image"`
}
