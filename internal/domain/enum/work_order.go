package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// WorkOrderStatus represents the completion state of an embroidery work order.
type WorkOrderStatus int

const (
	WorkOrderStatusPending   WorkOrderStatus = 0
	WorkOrderStatusCompleted WorkOrderStatus = 1
)

func (s WorkOrderStatus) String() string {
	return [...]string{"pending", "completed"}[s]
}

func (s WorkOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *WorkOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = WorkOrderStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = WorkOrderStatusPending
	case "completed":
		*s = WorkOrderStatusCompleted
	}
	return nil
}

func (s WorkOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *WorkOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = WorkOrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = WorkOrderStatus(v)
	case int:
		*s = WorkOrderStatus(v)
	}
	return nil
}

// WorkType distinguishes bridal jobs from normal embroidery work.
type WorkType int

const (
	WorkTypeNormal WorkType = 0
	WorkTypeBridal WorkType = 1
)

func (t WorkType) String() string {
	return [...]string{"normal", "bridal"}[t]
}

func (t WorkType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *WorkType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = WorkType(i)
		return nil
	}
	switch str {
	case "normal":
		*t = WorkTypeNormal
	case "bridal":
		*t = WorkTypeBridal
	}
	return nil
}

func (t WorkType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *WorkType) Scan(value interface{}) error {
	if value == nil {
		*t = WorkTypeNormal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = WorkType(v)
	case int:
		*t = WorkType(v)
	}
	return nil
}
