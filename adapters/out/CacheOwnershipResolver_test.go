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
	"github.com/go-redis/redis/v9"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"upload-sentry/common"
	"upload-sentry/domain/entities"
	"upload-sentry/logging"
	"upload-sentry/mocks"
)

type staticOwnerSource struct {
	owner entities.OwnerRef
	calls int
}

func (s *staticOwnerSource) ResolveOwner(context.Context, entities.ScanTarget) (entities.OwnerRef, bool) {
	s.calls++
	return s.owner, s.owner.CreatedBy != ""
}

func TestOwnershipRegisterAndResolve(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	target := entities.NewScanTarget("1/a.exe", "a.exe", 10, "")
	owner := entities.OwnerRef{ContentID: "post-1", CreatedBy: "7"}
	user := entities.UserRef{ID: "7", Username: "alice", Phone: "+5511999999999"}

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().Set("owner-1/a.exe", common.GetObjectJSON(t, owner), gomock.Any()).Return(nil)
	mockCache.EXPECT().Set("user-7", common.GetObjectJSON(t, user), gomock.Any()).Return(nil)
	mockCache.EXPECT().Get("owner-1/a.exe").Return(common.GetObjectJSON(t, owner), nil)
	mockCache.EXPECT().Get("user-7").Return(common.GetObjectJSON(t, user), nil)

	resolver := NewCacheOwnershipResolver(mockCache, nil, logging.NewDiscardLog())
	require.NoError(t, resolver.RegisterOwner(ctx, target, owner))
	require.NoError(t, resolver.RegisterUser(ctx, user))

	resolvedOwner, ok := resolver.ResolveOwner(ctx, target)
	require.True(t, ok)
	assert.Equal(t, owner, resolvedOwner)

	resolvedUser, ok := resolver.ResolveUser(ctx, resolvedOwner)
	require.True(t, ok)
	assert.Equal(t, user, resolvedUser)
}

func TestOwnershipMissing(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	target := entities.NewScanTarget("1/a.exe", "a.exe", 10, "")

	t.Run("unknown owner without fallback", func(t *testing.T) {
		mockCache := mocks.NewMockCache(mockCtrl)
		mockCache.EXPECT().Get("owner-1/a.exe").Return("", redis.Nil)

		resolver := NewCacheOwnershipResolver(mockCache, nil, logging.NewDiscardLog())
		_, ok := resolver.ResolveOwner(ctx, target)
		assert.False(t, ok)
	})

	t.Run("unknown owner resolved by fallback", func(t *testing.T) {
		mockCache := mocks.NewMockCache(mockCtrl)
		mockCache.EXPECT().Get("owner-1/a.exe").Return("", redis.Nil)

		fallback := &staticOwnerSource{owner: entities.OwnerRef{CreatedBy: "9"}}
		resolver := NewCacheOwnershipResolver(mockCache, fallback, logging.NewDiscardLog())

		owner, ok := resolver.ResolveOwner(ctx, target)
		assert.True(t, ok)
		assert.Equal(t, "9", owner.CreatedBy)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("corrupted user", func(t *testing.T) {
		mockCache := mocks.NewMockCache(mockCtrl)
		mockCache.EXPECT().Get("user-7").Return("{not json", nil)

		resolver := NewCacheOwnershipResolver(mockCache, nil, logging.NewDiscardLog())
		_, ok := resolver.ResolveUser(ctx, entities.OwnerRef{CreatedBy: "7"})
		assert.False(t, ok)
	})

	t.Run("owner without creator", func(t *testing.T) {
		resolver := NewCacheOwnershipResolver(mocks.NewMockCache(mockCtrl), nil, logging.NewDiscardLog())
		_, ok := resolver.ResolveUser(ctx, entities.OwnerRef{ContentID: "post-1"})
		assert.False(t, ok)
	})
}
