package dateutil

// Holiday and solar-term tables. Only 2026 is populated; lookups for
// any other year return empty results rather than an error.

type holidayRange struct {
	name  string
	start string
	end   string
}

var holidays2026 = []holidayRange{
	// 法定节假日（国务院办公厅 2025-11-04 通知）
	{"元旦", "2026-01-01", "2026-01-03"},
	{"春节", "2026-02-15", "2026-02-23"},
	{"清明节", "2026-04-04", "2026-04-06"},
	{"劳动节", "2026-05-01", "2026-05-05"},
	{"端午节", "2026-06-19", "2026-06-21"},
	{"中秋节", "2026-09-25", "2026-09-27"},
	{"国庆节", "2026-10-01", "2026-10-07"},

	// 传统农历节日（2026）
	{"腊八节", "2026-01-26", "2026-01-26"},
	{"小年（北）", "2026-02-10", "2026-02-10"},
	{"小年（南）", "2026-02-11", "2026-02-11"},
	{"除夕", "2026-02-16", "2026-02-16"},
	{"春节", "2026-02-17", "2026-02-17"},
	{"元宵节", "2026-03-03", "2026-03-03"},
	{"龙抬头", "2026-03-20", "2026-03-20"},
	{"上巳节", "2026-04-19", "2026-04-19"},
	{"端午节", "2026-06-19", "2026-06-19"},
	{"七夕节", "2026-08-19", "2026-08-19"},
	{"中元节", "2026-08-27", "2026-08-27"},
	{"中秋节", "2026-09-25", "2026-09-25"},
	{"重阳节", "2026-10-18", "2026-10-18"},
	{"寒衣节", "2026-11-09", "2026-11-09"},
	{"下元节", "2026-11-23", "2026-11-23"},

	// 常见纪念日/国际节日（固定公历）
	{"情人节", "2026-02-14", "2026-02-14"},
	{"妇女节", "2026-03-08", "2026-03-08"},
	{"植树节", "2026-03-12", "2026-03-12"},
	{"消费者权益日", "2026-03-15", "2026-03-15"},
	{"愚人节", "2026-04-01", "2026-04-01"},
	{"世界地球日", "2026-04-22", "2026-04-22"},
	{"青年节", "2026-05-04", "2026-05-04"},
	{"护士节", "2026-05-12", "2026-05-12"},
	{"儿童节", "2026-06-01", "2026-06-01"},
	{"建党节", "2026-07-01", "2026-07-01"},
	{"建军节", "2026-08-01", "2026-08-01"},
	{"教师节", "2026-09-10", "2026-09-10"},
	{"万圣节", "2026-10-31", "2026-10-31"},
	{"平安夜", "2026-12-24", "2026-12-24"},
	{"圣诞节", "2026-12-25", "2026-12-25"},
}

var solarTerms2026 = map[string]string{
	"2026-01-05": "小寒",
	"2026-01-20": "大寒",
	"2026-02-04": "立春",
	"2026-02-18": "雨水",
	"2026-03-05": "惊蛰",
	"2026-03-20": "春分",
	"2026-04-05": "清明",
	"2026-04-20": "谷雨",
	"2026-05-05": "立夏",
	"2026-05-21": "小满",
	"2026-06-05": "芒种",
	"2026-06-21": "夏至",
	"2026-07-07": "小暑",
	"2026-07-23": "大暑",
	"2026-08-07": "立秋",
	"2026-08-23": "处暑",
	"2026-09-07": "白露",
	"2026-09-23": "秋分",
	"2026-10-08": "寒露",
	"2026-10-23": "霜降",
	"2026-11-07": "立冬",
	"2026-11-22": "小雪",
	"2026-12-07": "大雪",
	"2026-12-22": "冬至",
}

var holidayMap2026 = buildHolidayMap()

func buildHolidayMap() map[string][]string {
	out := make(map[string][]string)
	for _, h := range holidays2026 {
		start, err := FromISO(h.start)
		if err != nil {
			continue
		}
		end, err := FromISO(h.end)
		if err != nil {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			iso := ToISO(d)
			if !containsLabel(out[iso], h.name) {
				out[iso] = append(out[iso], h.name)
			}
		}
	}
	return out
}

func containsLabel(labels []string, name string) bool {
	for _, l := range labels {
		if l == name {
			return true
		}
	}
	return false
}

// HolidayLabels returns every holiday name attached to a date. A date
// can carry several labels when a legal holiday range and a traditional
// festival overlap. Dates outside 2026 return nil.
func HolidayLabels(iso string) []string {
	if len(iso) < 4 || iso[:4] != "2026" {
		return nil
	}
	return holidayMap2026[iso]
}

// SolarTermLabel returns the solar term for a date, or "" when none.
func SolarTermLabel(iso string) string {
	if len(iso) < 4 || iso[:4] != "2026" {
		return ""
	}
	return solarTerms2026[iso]
}
