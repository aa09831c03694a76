package watch

import "sync"

// Kind は変更イベントの種別を表します。
type Kind string

const (
	// KindEmployee は社員レコード(要約を含む)の変更を表します。
	KindEmployee Kind = "employee"
	// KindProject はプロジェクトレコードの変更を表します。
	KindProject Kind = "project"
	// KindTeam はアサインメントレコードの変更を表します。
	KindTeam Kind = "team"
)

// Event はテナント配下で発生した変更を通知するイベントです。
// 購読側はイベントを差分としてではなく「再取得の合図」として扱います。
// Origin はこのプロセスの外で発生したイベントにだけ設定されます。
// 空でないイベントを他インスタンスへ再転送してはいけません。
type Event struct {
	TenantID   string `json:"tenant_id"`
	Kind       Kind   `json:"kind"`
	ProjectID  string `json:"project_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	MemberID   string `json:"member_id,omitempty"`
	Origin     string `json:"origin,omitempty"`
}

// Publisher は変更イベントの発行先の抽象です。
type Publisher interface {
	Publish(e Event)
}

const subscriberBuffer = 16

type subscriber struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

// Hub はプロセス内のイベントファンアウトを提供します。
// 遅い購読者はバッファ溢れ時に最古のイベントを落として切り離します。
// 購読者は常にスナップショット全体を再取得するため、取りこぼしても
// 次のイベントで追いつけます。
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]*subscriber
	nextID uint64
}

// NewHub は Hub を生成します。
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*subscriber)}
}

// Publish はすべての購読者へイベントを配送します。ブロックしません。
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	targets := make([]*subscriber, 0, len(h.subs))
	for _, sub := range h.subs {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		sub.offer(e)
	}
}

// Subscribe は購読を登録し、解除関数を返します。
// 解除関数は冪等で、複数回呼んでも安全です。
func (h *Hub) Subscribe(fn func(Event)) func() {
	sub := &subscriber{
		ch:   make(chan Event, subscriberBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = sub
	h.mu.Unlock()

	go sub.run(fn)

	return func() {
		sub.once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.done)
		})
	}
}

func (s *subscriber) offer(e Event) {
	for {
		select {
		case s.ch <- e:
			return
		case <-s.done:
			return
		default:
		}

		// バッファ満杯時は最古のイベントを捨てて空きを作る。
		select {
		case <-s.ch:
		case <-s.done:
			return
		default:
		}
	}
}

func (s *subscriber) run(fn func(Event)) {
	for {
		select {
		case e := <-s.ch:
			fn(e)
		case <-s.done:
			return
		}
	}
}
