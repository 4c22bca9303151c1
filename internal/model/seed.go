package model

import "time"

// SeedLists and SeedTasks provide the first-run dataset shown before
// the user has stored anything.

func SeedLists() []List {
	return []List{
		{ID: "list_1", Name: "系统开发"},
		{ID: "list_2", Name: "视觉设计"},
		{ID: "list_3", Name: "个人生活"},
	}
}

func SeedTasks(now time.Time) []Task {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []Task{
		{
			ID:       "task_seed_1",
			Title:    "重构系统底层动画引擎",
			Date:     day(0),
			Priority: PriorityHigh,
			Status:   StatusTodo,
			ListID:   "list_1",
			Desc:     "处理 120Hz 刷新率同步与渲染稳定性。",
		},
		{
			ID:       "task_seed_2",
			Title:    "紫色主题视觉规范建立",
			Date:     day(1),
			Priority: PriorityMedium,
			Status:   StatusDoing,
			ListID:   "list_2",
			Desc:     "定义深紫到亮紫的渐变色阶。",
		},
		{
			ID:        "task_seed_3",
			Title:     "购置新的工作站",
			Date:      day(4),
			Priority:  PriorityLow,
			Completed: true,
			Status:    StatusDone,
			ListID:    "list_3",
			Desc:      "Mac Studio 配置确认与采购。",
		},
		{
			ID:       "task_seed_4",
			Title:    "看板模式高级排版优化",
			Date:     day(0),
			Priority: PriorityHigh,
			Status:   StatusTodo,
			ListID:   "list_2",
			Desc:     "处理拖拽反馈与分栏材质。",
		},
	}
}
