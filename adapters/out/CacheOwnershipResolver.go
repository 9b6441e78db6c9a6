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
	"encoding/json"
	"fmt"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
)

const (
	ownerKeyFormat = "owner-%s"
	userKeyFormat  = "user-%s"
)

type OwnerSource interface {
	ResolveOwner(ctx context.Context, target entities.ScanTarget) (entities.OwnerRef, bool)
}

// CacheOwnershipResolver keeps the owner of every upload and the contact data of every
// uploader. Owners missing from the cache are looked up in the fallback source, if any.
type CacheOwnershipResolver struct {
	cache    out.Cache
	fallback OwnerSource
	logger   logging.Logger
}

func NewCacheOwnershipResolver(cache out.Cache, fallback OwnerSource, logger logging.Logger) *CacheOwnershipResolver {
	return &CacheOwnershipResolver{cache: cache, fallback: fallback, logger: logger}
}

func (c *CacheOwnershipResolver) RegisterOwner(_ context.Context, target entities.ScanTarget, owner entities.OwnerRef) error {
	return c.save(fmt.Sprintf(ownerKeyFormat, target.ID), owner)
}

func (c *CacheOwnershipResolver) RegisterUser(_ context.Context, user entities.UserRef) error {
	return c.save(fmt.Sprintf(userKeyFormat, user.ID), user)
}

func (c *CacheOwnershipResolver) ResolveOwner(ctx context.Context, target entities.ScanTarget) (entities.OwnerRef, bool) {
	var owner entities.OwnerRef
	if c.load(fmt.Sprintf(ownerKeyFormat, target.ID), &owner) && owner.CreatedBy != "" {
		return owner, true
	}

	if c.fallback != nil {
		return c.fallback.ResolveOwner(ctx, target)
	}

	return entities.OwnerRef{}, false
}

func (c *CacheOwnershipResolver) ResolveUser(_ context.Context, owner entities.OwnerRef) (entities.UserRef, bool) {
	var user entities.UserRef
	if owner.CreatedBy == "" || !c.load(fmt.Sprintf(userKeyFormat, owner.CreatedBy), &user) {
		return entities.UserRef{}, false
	}

	return user, true
}

func (c *CacheOwnershipResolver) save(key string, value any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.cache.Set(key, string(jsonValue), 0); err != nil {
		return fmt.Errorf("failed to save %s. %w", key, err)
	}

	return nil
}

func (c *CacheOwnershipResolver) load(key string, value any) bool {
	jsonValue, err := c.cache.Get(key)
	if errors.Is(err, redis.Nil) {
		return false
	}

	if err != nil {
		c.logger.Errorw("Failed to read ownership data", "error", err, "key", key)
		return false
	}

	if err := json.Unmarshal([]byte(jsonValue), value); err != nil {
		c.logger.Errorw("Corrupted ownership data", "error", err, "key", key)
		return false
	}

	return true
}
