package usecase

import "github.com/go-playground/validator/v10"

// 更新系の入力チェックに使う共有インスタンス
var validate = validator.New()

// ServiceStatus は更新系オペレーションの結果タグ
type ServiceStatus string

const (
	StatusNone     ServiceStatus = ""
	StatusCreated  ServiceStatus = "CREATED"
	StatusUpdated  ServiceStatus = "UPDATED"
	StatusDeleted  ServiceStatus = "DELETED"
	StatusNotFound ServiceStatus = "NOT_FOUND"
	StatusInvalid  ServiceStatus = "INVALID"
	StatusError    ServiceStatus = "ERROR"
)

// ServiceResponse は更新系オペレーション共通の結果。
// CreatedIDはStatusCreatedのときだけ有効。
// Messagesは人間向けで、成功時は空。
type ServiceResponse struct {
	Status    ServiceStatus `json:"status"`
	CreatedID int64         `json:"created_id,omitempty"`
	Messages  []string      `json:"messages,omitempty"`
}

func created(id int64) ServiceResponse {
	return ServiceResponse{Status: StatusCreated, CreatedID: id}
}

func updated() ServiceResponse {
	return ServiceResponse{Status: StatusUpdated}
}

func deleted() ServiceResponse {
	return ServiceResponse{Status: StatusDeleted}
}

func notFound(messages ...string) ServiceResponse {
	return ServiceResponse{Status: StatusNotFound, Messages: messages}
}

func invalid(messages ...string) ServiceResponse {
	return ServiceResponse{Status: StatusInvalid, Messages: messages}
}

func failure(messages ...string) ServiceResponse {
	return ServiceResponse{Status: StatusError, Messages: messages}
}
