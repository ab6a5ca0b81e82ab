package news

import "strconv"

// Storage key layout, see the package documentation for the full table.

const (
	keyNewsCount       = "news.count"
	keyTopIndex        = "news.top"
	keyCronIndex       = "news.cron"
	keyUsersCount      = "users.count"
	keyCategoriesCount = "categories.count"
)

func keyNews(id int64) string {
	return "news:" + strconv.FormatInt(id, 10)
}

func keyVotes(dir Direction, id int64) string {
	return "news." + string(dir) + ":" + strconv.FormatInt(id, 10)
}

func keyTopByCategory(categoryID int64) string {
	return "news.top.by_category:" + strconv.FormatInt(categoryID, 10)
}

func keyCronByCategory(categoryID int64) string {
	return "news.cron.by_category:" + strconv.FormatInt(categoryID, 10)
}

func keyURL(url string) string {
	return "url:" + url
}

func keyUser(id int64) string {
	return "user:" + strconv.FormatInt(id, 10)
}

func keySaved(userID int64) string {
	return "user.saved:" + strconv.FormatInt(userID, 10)
}

func keyPosted(userID int64) string {
	return "user.posted:" + strconv.FormatInt(userID, 10)
}

func keyEmailToID(email string) string {
	return "email.to.id:" + email
}

func keyCategory(id int64) string {
	return "category:" + strconv.FormatInt(id, 10)
}

func keyCategoryCodeToID(code string) string {
	return "category_codes.to.id:" + code
}
