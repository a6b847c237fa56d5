package services

import (
	"fmt"
	"strings"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/sirupsen/logrus"
)

// Notifier delivers a rendered message to one recipient. Implementations
// report success with the bool; the workflow never fails on a false.
type Notifier interface {
	Send(subject, to, html, text string) bool
}

// LogNotifier เอาไว้ dev/test: เขียน log แทนการส่งเมลจริง
type LogNotifier struct{}

func (LogNotifier) Send(subject, to, html, text string) bool {
	logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("notification dispatched")
	return true
}

var statusHeadlines = map[entity.OrderStatus]struct {
	badge string
	note  string
}{
	entity.OrderPending:   {"CHỜ XÁC NHẬN", "Chúng tôi đã tiếp nhận yêu cầu và sẽ xác nhận sớm nhất."},
	entity.OrderConfirmed: {"ĐÃ XÁC NHẬN", "Chúng tôi đã nhận đơn và đang chuẩn bị nguyên liệu."},
	entity.OrderPreparing: {"ĐANG CHUẨN BỊ", "Đội bếp đang thao tác, món ăn sẽ sẵn sàng trong ít phút nữa."},
	entity.OrderReady:     {"SẴN SÀNG", "Bạn có thể đến nhận tại quầy hoặc ra bàn."},
	entity.OrderCompleted: {"HOÀN THÀNH", "Đơn hàng đã hoàn tất. Cảm ơn bạn đã dùng bữa!"},
	entity.OrderCancelled: {"ĐÃ HỦY", "Đơn hàng đã được hủy theo yêu cầu hoặc do hệ thống."},
}

// buildStatusMessage renders the per-status notification for an order
// aggregate loaded with user/table/reservation/items.
func buildStatusMessage(o *entity.Order, status entity.OrderStatus) (subject, html, text string, ok bool) {
	cfg, ok := statusHeadlines[status]
	if !ok || o.User.Email == "" {
		return "", "", "", false
	}

	subject = fmt.Sprintf("Đơn hàng #%d — %s", o.ID, cfg.badge)

	tableLabel := "Không đặt bàn"
	slot := "Không đặt bàn"
	if o.Table != nil {
		tableLabel = "Bàn " + o.Table.TableNumber
		if o.Table.Location != "" {
			tableLabel += " • " + o.Table.Location
		}
	}
	if o.Reservation != nil {
		slot = fmt.Sprintf("%s - %s",
			o.Reservation.StartTime.Format("02/01/2006 15:04"),
			o.Reservation.EndTime.Format("15:04"))
	}

	var lines, rows strings.Builder
	for _, it := range o.Items {
		name := it.Product.Name
		if name == "" {
			name = fmt.Sprintf("Món #%d", it.ProductID)
		}
		fmt.Fprintf(&lines, "- %s x%d: %d đ\n", name, it.Quantity, it.Subtotal)
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>x%d</td><td>%d đ</td></tr>", name, it.Quantity, it.Subtotal)
	}

	text = fmt.Sprintf(
		"Xin chào %s,\n\n%s\n- Trạng thái: %s\n- Bàn: %s\n- Thời gian: %s\n%s- Tổng tiền: %d đ\n\n%s\n",
		o.User.FullName, subject, cfg.badge, tableLabel, slot, lines.String(), o.TotalAmount, cfg.note)

	html = fmt.Sprintf(
		"<h1>%s</h1><p>Xin chào %s, %s</p><p>%s — %s</p><table>%s</table><p>Tổng cộng: <b>%d đ</b></p>",
		subject, o.User.FullName, cfg.note, tableLabel, slot, rows.String(), o.TotalAmount)

	return subject, html, text, true
}

// notifyStatus dispatches best-effort; failures are logged, never returned.
func (s *OrderService) notifyStatus(o *entity.Order, status entity.OrderStatus) {
	if s.Notifier == nil {
		return
	}
	subject, html, text, ok := buildStatusMessage(o, status)
	if !ok {
		return
	}
	if !s.Notifier.Send(subject, o.User.Email, html, text) {
		logrus.WithFields(logrus.Fields{
			"orderId": o.ID,
			"status":  status,
		}).Warn("order notification failed")
	}
}
