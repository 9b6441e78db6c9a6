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

package out

import (
	"context"
	"upload-sentry/domain/entities"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_ownership_resolver.go -package=mocks -source=OwnershipResolver.go
type OwnershipResolver interface {
	ResolveOwner(ctx context.Context, target entities.ScanTarget) (entities.OwnerRef, bool)
	ResolveUser(ctx context.Context, owner entities.OwnerRef) (entities.UserRef, bool)
}

type OwnershipRegistry interface {
	RegisterOwner(ctx context.Context, target entities.ScanTarget, owner entities.OwnerRef) error
	RegisterUser(ctx context.Context, user entities.UserRef) error
}
