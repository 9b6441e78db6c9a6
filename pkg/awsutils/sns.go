/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package awsutils

import (
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_sns.go -package=mocks -source=sns.go
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type SNSClient struct {
	svc snsiface.SNSAPI
}

func NewSNSClient(session *session.Session, config *aws.Config) *SNSClient {
	return &SNSClient{svc: sns.New(session, config)}
}

func (c *SNSClient) SendSMS(ctx context.Context, phone, message string) error {
	params := sns.PublishInput{
		Message:     aws.String(message),
		PhoneNumber: aws.String(phone),
	}

	_, err := c.svc.PublishWithContext(ctx, &params)
	return err
}
