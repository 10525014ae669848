package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePageParams(t *testing.T) {
	testCases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "正常参数原样返回", page: 2, limit: 20, wantPage: 2, wantLimit: 20},
		{name: "页码小于1回退为1", page: 0, limit: 20, wantPage: 1, wantLimit: 20},
		{name: "负数页码回退为1", page: -3, limit: 20, wantPage: 1, wantLimit: 20},
		{name: "每页数量为0回退为10", page: 1, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "每页数量超上限回退为10", page: 1, limit: 500, wantPage: 1, wantLimit: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := NormalizePageParams(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNewPagination(t *testing.T) {
	t.Run("总数不是每页数量的整数倍时向上取整", func(t *testing.T) {
		p := NewPagination(1, 10, 25)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasMore)
	})

	t.Run("最后一页没有更多数据", func(t *testing.T) {
		p := NewPagination(3, 10, 25)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasMore)
	})

	t.Run("空结果集", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasMore)
		assert.Equal(t, int64(0), p.Total)
	})
}

func TestIsValidJobType(t *testing.T) {
	for _, jobType := range []string{JobTypeFullTime, JobTypeContract, JobTypeRemote, JobTypeInternship} {
		assert.True(t, IsValidJobType(jobType), jobType)
	}
	assert.False(t, IsValidJobType("part-time"))
	assert.False(t, IsValidJobType(""))
}
