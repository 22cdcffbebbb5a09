package orders

const TopicOrderPlaced = "storefront.order.placed"

// Partition key = order id.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
