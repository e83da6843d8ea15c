package services

import (
	"fmt"
	"net/url"

	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

// ContactLink builds the WhatsApp deep link a buyer opens to reach the
// seller: https://wa.me/<digits-only-phone>?text=<url-encoded template>.
func ContactLink(l *models.Listing) string {
	msg := fmt.Sprintf(
		"Hi %s, I'm interested in your %s listed on Campus Mart for ₹%d. Is it still available?",
		l.SellerName, l.Title, l.Price,
	)
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + l.Contact.Digits(),
		RawQuery: "text=" + url.QueryEscape(msg),
	}
	return u.String()
}
