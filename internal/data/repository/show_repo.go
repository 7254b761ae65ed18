package repository

import (
	"context"

	"arte-booking/internal/data/entity"

	"go.uber.org/zap"
)

// ShowRepository reads the show catalog. The catalog is compiled in and
// never changes while the process runs.
type ShowRepository interface {
	FindAll(ctx context.Context) ([]*entity.Show, error)
	FindByID(ctx context.Context, id string) (*entity.Show, error)
}

type showRepository struct {
	shows []*entity.Show
	byID  map[string]*entity.Show
	log   *zap.Logger
}

func NewShowRepository(log *zap.Logger) ShowRepository {
	return newShowRepository(Catalog(), log)
}

func newShowRepository(shows []*entity.Show, log *zap.Logger) *showRepository {
	byID := make(map[string]*entity.Show, len(shows))
	for _, s := range shows {
		byID[s.ID] = s
	}
	return &showRepository{
		shows: shows,
		byID:  byID,
		log:   log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) FindAll(ctx context.Context) ([]*entity.Show, error) {
	return r.shows, nil
}

// FindByID returns nil, nil when the show is not in the catalog.
func (r *showRepository) FindByID(ctx context.Context, id string) (*entity.Show, error) {
	show, ok := r.byID[id]
	if !ok {
		r.log.Debug("Show not found", zap.String("show_id", id))
		return nil, nil
	}
	return show, nil
}

// AuditoriumLayout is the seat map of the 신관 4층 강당.
func AuditoriumLayout() entity.SeatLayout {
	sides := []entity.SeatSide{
		{Name: "왼쪽", Seats: 6},
		{Name: "중앙", Seats: 12},
		{Name: "오른쪽", Seats: 6},
	}
	return entity.SeatLayout{Sections: []entity.SeatSection{
		{Grade: "VIP", Floor: "1층", Block: "앞", Rows: 9, Sides: sides},
		{Grade: "R석", Floor: "1층", Block: "뒤", Rows: 8, Sides: sides},
		{Grade: "S석", Floor: "2층", Rows: 8, Sides: sides},
	}}
}

func defaultSeatGrades() []entity.SeatGrade {
	return []entity.SeatGrade{
		{Grade: "VIP", Description: "1층 앞블럭 최고급 좌석", Floor: "1층"},
		{Grade: "R석", Description: "1층 뒷블럭 우수 좌석", Floor: "1층"},
		{Grade: "S석", Description: "2층 전체 일반 좌석", Floor: "2층"},
	}
}

// Catalog returns the shows offered by the club, in display order.
func Catalog() []*entity.Show {
	return []*entity.Show{
		entity.NewShow(entity.Show{
			ID:          "dead-poets-society",
			Title:       "< 죽은 시인의 사회 >",
			Subtitle:    "Dead Poets Society",
			Genre:       "{ 연극 드라마 }",
			Special:     "{ 방과후 째기 가능! }",
			Runtime:     "약 1시간",
			AgeRating:   "{ 재밌는 내용 }",
			Venue:       "신관 4층 강당",
			Date:        "2025년 7월 21일 (월)",
			Time:        "방과후 시간",
			PosterImage: "/new-poster.png",
			Cast: []entity.CastMember{
				{Role: "키팅", Actor: "김승현", Intro: "항상 세상을 넓고 창의적으로 볼 줄 알고, 그를 통해 행복하게 사는 사람. 자신의 삶의 방식을 학생들에게 가르치고자 한다.", Image: "/cast-member-5.png"},
				{Role: "앤더슨", Actor: "조민서", Intro: "미디고의 전학생으로, 부모님의 공부 압박과 비교에 자존감이 매우 낮은 캐릭터이다. 그러나 닐과 키팅선생님의 도움과 가르침으로 점점 자신의 의견을 표현할 수 있게된다.", Image: "/cast-member-6.png"},
				{Role: "닐", Actor: "전소현", Intro: "미디고의 우등생, 뮤지컬과 방송부 활동에 관심이 많고, 재능이 있지만 선생님이자 아버지인 맥컬리스터의 강요에 따라 살아간다.", Image: "/cast-member-3.png"},
				{Role: "찰리", Actor: "김보경", Intro: "미디고 학생이자 닐의 친구. 정이 많고 장난끼가 많음. 키팅 선생을 매우 좋아하고 잘 따름.", Image: "/cast-member-4.png"},
				{Role: "카메론", Actor: "조경윤", Intro: "항상 공부를 생각하는 모범생. 엄격한 규칙주의자. 키팅의 수업 방식을 잘 이해를 못하는 비성숙한 면모도 보여짐", Image: "/cast-member-8.png"},
				{Role: "녹스", Actor: "박소은", Intro: "미디고의 모범생 중 하나. 첫사랑인 그에게는 이미 여자친구가 있다는 것을 알게되고 자신의 사랑에 대해 깊은 고민에 빠진다.", Image: "/cast-member-1.png"},
				{Role: "학생 주임", Actor: "오건우", Intro: "정해진 뜻을 따르는것이 무조건 정답이다 생각하는 학교의 학생 주임.", Image: "/cast-member-2.png"},
				{Role: "앤더슨 아버지", Actor: "김지오", Intro: "앤더슨이 죽은 시인의 사회라는 모임에 어울리는 것을 싫어한다.", Image: "/cast-member-7.png"},
			},
			Synopsis:   "엄격한 학교 '미디어 디지털 고등학교' 그 학교에 키팅 선생님이 오게되고, 그의 교육으로 학생들은 변해가는데...",
			Highlights: []string{"아르떼의 역작", "디미고 단독 공연", "교내 최고 캐스팅", "교훈있는 내용"},
			SeatGrades: defaultSeatGrades(),
			Layout:     AuditoriumLayout(),
		}),
		entity.NewShow(entity.Show{
			ID:          "rent",
			Title:       "< RENT >",
			Subtitle:    "Rent Musical",
			Genre:       "{ 뮤지컬 드라마 }",
			Special:     "{ 감동적인 스토리! }",
			Runtime:     "약 2시간",
			AgeRating:   "{ 청소년 관람가 }",
			Venue:       "신관 4층 강당",
			Date:        "2025년 12월 14일 (금) (예정)",
			Time:        "방과후 1~2타임",
			PosterImage: "/rent_poster_re.png",
			Cast: []entity.CastMember{
				{Role: "로저", Actor: "곽승현", Intro: "HIV에 감염된 뮤지션으로, 사랑과 예술에 대한 열정을 가지고 있다."},
				{Role: "미미", Actor: "전소현", Intro: "댄서이자 마약 중독자로, 로저와 사랑에 빠지게 된다."},
				{Role: "마크", Actor: "김승현", Intro: "영화감독 지망생으로, 친구들의 삶을 기록하려 한다."},
				{Role: "모린", Actor: "김보경", Intro: "퍼포먼스 아티스트로, 마크의 전 여자친구이다."},
			},
			Synopsis:   "1990년대 뉴욕 이스트 빌리지를 배경으로, HIV/AIDS의 그림자 아래 살아가는 젊은 예술가들의 사랑과 우정, 그리고 삶에 대한 이야기를 그린 감동적인 뮤지컬입니다.",
			Highlights: []string{"브로드웨이 명작", "감동적인 음악", "현실적인 스토리", "청춘의 아름다움"},
			SeatGrades: defaultSeatGrades(),
			Layout:     AuditoriumLayout(),
		}),
		entity.NewShow(entity.Show{
			ID:        "your-lie-in-april",
			Title:     "< 아르떼 : re >",
			Subtitle:  "ARTE in dimi",
			Genre:     "{ 뮤지컬 드라마 }",
			Special:   "{ 클래식과 함께하는 감동! }",
			Runtime:   "약 2시간 30분",
			AgeRating: "{ 전체 관람가 }",
			Venue:     "어디든",
			Date:      "2026년 7월 (예정)",
			Time:      "미정",
			Cast: []entity.CastMember{
				{Role: "아리마 코세이", Actor: "정우진", Intro: "피아노 신동이었지만 어머니의 죽음 후 피아노 소리를 들을 수 없게 된 소년."},
				{Role: "미야조노 카오리", Actor: "한예슬", Intro: "자유분방한 바이올리니스트로, 코세이의 삶에 새로운 색깔을 가져다준다."},
				{Role: "사와베 츠바키", Actor: "김소영", Intro: "코세이의 소꿉친구로, 그를 향한 마음을 품고 있다."},
				{Role: "와타리 료타", Actor: "이동현", Intro: "축구부 에이스이자 코세이의 친구로, 밝고 긍정적인 성격을 가지고 있다."},
			},
			Synopsis:   "피아노를 칠 수 없게 된 소년 코세이와 자유로운 바이올리니스트 카오리의 만남을 통해 음악과 사랑, 그리고 성장에 대한 아름다운 이야기를 그린 감동적인 뮤지컬입니다.",
			Highlights: []string{"아름다운 클래식 음악", "감동적인 스토리", "청춘 로맨스", "성장 드라마"},
			SeatGrades: defaultSeatGrades(),
			Layout:     AuditoriumLayout(),
		}),
	}
}
