package store

import (
	"fmt"
	"net/http"
	"net/url"

	"TrioChat/entity"
)

// GetOrder fetches the order metadata shown in a thread header.
func (s *Service) GetOrder(orderID string) (*entity.Order, error) {
	path := fmt.Sprintf("/orders/%s", url.PathEscape(orderID))

	var order entity.Order
	if err := s.do(http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
