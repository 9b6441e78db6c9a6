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
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	maxIdleConnections     = 100
	idleConnectionsTimeout = 90
	maxIdleConnsPerHost    = 50
	maxConnsPerHost        = 100
)

// Clients shares one session between the S3, SQS and SNS clients of the service.
type Clients struct {
	once    sync.Once
	session *session.Session
	err     error
}

// Session builds the shared session on first use. A non-empty endpoint sends every service
// to the same address, which is how localstack is reached in tests.
func (c *Clients) Session(region, endpoint string) (*session.Session, error) {
	c.once.Do(func() {
		config := aws.NewConfig().
			WithRegion(region).
			WithS3ForcePathStyle(true).
			WithHTTPClient(newHTTPClient()).
			WithDisableRestProtocolURICleaning(true)

		if endpoint != "" {
			config.WithEndpointResolver(staticResolver(endpoint))
		}

		c.session, c.err = session.NewSessionWithOptions(session.Options{
			Config:            *config,
			SharedConfigState: session.SharedConfigEnable,
		})
	})

	return c.session, c.err
}

func newHTTPClient() *http.Client {
	return &http.Client{Transport: &http.Transport{
		MaxIdleConns:        maxIdleConnections,
		IdleConnTimeout:     idleConnectionsTimeout * time.Second,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		MaxConnsPerHost:     maxConnsPerHost,
	}}
}

func staticResolver(endpoint string) endpoints.Resolver {
	return endpoints.ResolverFunc(func(service, region string, optFns ...func(*endpoints.Options)) (endpoints.ResolvedEndpoint, error) {
		return endpoints.ResolvedEndpoint{
			PartitionID:   "aws",
			URL:           endpoint,
			SigningRegion: region,
		}, nil
	})
}
