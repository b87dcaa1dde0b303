package twilio

import (
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client twilio-go 中用到的方法
//
//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=twiliomocks -typed Client
type Client interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
	FetchAccount(sid string) (*openapi.ApiV2010Account, error)
}

// ClientFactory 根据学校的账号创建客户端
type ClientFactory func(accountSID, authToken string) Client

func NewRestClient(accountSID, authToken string) Client {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	}).Api
}
