package numerology

// strokeCounts holds traditional (Kangxi) stroke counts for common surname
// and given-name characters. Simplified forms carry the count of their
// traditional form, which is what five-grid naming uses.
var strokeCounts = map[rune]int{
	// numerals use their face value
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5, '六': 6, '七': 7, '八': 8, '九': 9, '十': 10,

	// surnames
	'王': 4, '李': 7, '张': 11, '張': 11, '刘': 15, '劉': 15, '陈': 16, '陳': 16,
	'杨': 13, '楊': 13, '黄': 12, '黃': 12, '赵': 14, '趙': 14, '吴': 7, '吳': 7,
	'周': 8, '徐': 10, '孙': 10, '孫': 10, '马': 10, '馬': 10, '朱': 6, '胡': 11,
	'郭': 15, '何': 7, '林': 8, '高': 10, '罗': 20, '羅': 20, '郑': 19, '鄭': 19,
	'梁': 11, '谢': 17, '謝': 17, '宋': 7, '唐': 10, '许': 11, '許': 11, '韩': 17,
	'韓': 17, '冯': 12, '馮': 12, '邓': 19, '鄧': 19, '曹': 11, '彭': 12, '曾': 12,
	'肖': 9, '萧': 18, '蕭': 18, '田': 5, '董': 15, '袁': 10, '潘': 16, '于': 3,
	'蒋': 17, '蔣': 17, '蔡': 17, '余': 7, '杜': 7, '叶': 15, '葉': 15, '程': 12,
	'苏': 22, '蘇': 22, '魏': 18, '吕': 7, '呂': 7, '丁': 2, '任': 6, '沈': 8, '姚': 9,
	'卢': 16, '盧': 16, '姜': 9, '崔': 11, '钟': 17, '鍾': 17, '谭': 19, '譚': 19,
	'陆': 16, '陸': 16, '汪': 8, '范': 15, '範': 15, '金': 8, '石': 5, '廖': 14,
	'贾': 13, '賈': 13, '夏': 10, '韦': 9, '韋': 9, '方': 4, '白': 5, '邹': 17, '鄒': 17,
	'孟': 8, '熊': 14, '秦': 10, '邱': 12, '江': 7, '尹': 4, '薛': 19, '段': 9, '雷': 13,
	'侯': 9, '龙': 16, '龍': 16, '史': 5, '陶': 16, '黎': 15, '贺': 12, '賀': 12,
	'顾': 21, '顧': 21, '毛': 4, '郝': 14, '龚': 22, '龔': 22, '邵': 12, '万': 15,
	'萬': 15, '钱': 16, '錢': 16, '严': 20, '嚴': 20, '武': 8, '戴': 18, '莫': 13,
	'孔': 4, '向': 6, '汤': 13, '湯': 13, '常': 11, '温': 14, '溫': 14, '康': 11,
	'施': 9, '文': 4, '牛': 4, '樊': 15, '葛': 15, '邢': 11, '安': 6, '齐': 14, '齊': 14,
	'易': 8, '乔': 12, '喬': 12, '伍': 6, '庞': 19, '龐': 19, '颜': 18, '顏': 18,
	'倪': 10, '庄': 13, '莊': 13, '聂': 18, '聶': 18, '章': 11, '鲁': 15, '魯': 15,
	'岳': 8, '翟': 14, '殷': 10, '詹': 13, '申': 5, '欧': 15, '歐': 15, '耿': 10,
	'关': 19, '關': 19, '焦': 12, '俞': 9, '左': 5, '柳': 9, '甘': 5, '祝': 10, '包': 5,
	'尚': 8, '符': 11, '舒': 12, '阮': 12, '柯': 9, '纪': 9, '紀': 9, '梅': 11, '童': 12,
	'凌': 10, '毕': 11, '畢': 11, '单': 12, '單': 12, '季': 8, '裴': 14, '霍': 16,
	'涂': 11, '成': 7, '苗': 11, '谷': 7, '盛': 12, '曲': 6, '翁': 10, '冉': 5, '骆': 16,
	'駱': 16, '蓝': 20, '藍': 20, '路': 13, '游': 13, '辛': 7, '靳': 13, '管': 14,
	'柴': 10, '蒙': 16, '鲍': 16, '鮑': 16, '喻': 12, '祁': 8, '蒲': 16, '房': 8,
	'滕': 15, '屈': 8, '解': 13, '艾': 8, '尤': 4, '穆': 16, '司': 5, '卓': 8, '古': 5,
	'吉': 6, '车': 7, '車': 7, '项': 12, '項': 12, '连': 14, '連': 14, '褚': 15,
	'戚': 11, '岑': 7, '景': 12, '宫': 10, '宮': 10, '费': 12, '費': 12, '卜': 2,
	'冷': 7, '席': 10, '卫': 15, '衛': 15, '米': 6, '柏': 9, '宗': 8, '桂': 10, '全': 6,

	// given names
	'伟': 11, '偉': 11, '芳': 10, '娜': 10, '敏': 11, '静': 16, '靜': 16, '丽': 19,
	'麗': 19, '强': 11, '強': 11, '磊': 15, '军': 9, '軍': 9, '洋': 10, '勇': 9,
	'杰': 12, '傑': 12, '娟': 10, '涛': 18, '濤': 18, '明': 8, '超': 12, '秀': 7,
	'霞': 17, '平': 5, '刚': 10, '剛': 10, '英': 11, '华': 14, '華': 14, '玉': 5,
	'萍': 14, '红': 9, '紅': 9, '鑫': 24, '辉': 15, '輝': 15, '斌': 12, '宇': 6,
	'浩': 11, '凯': 12, '凱': 12, '健': 11, '俊': 9, '帆': 6, '旭': 6, '宁': 14,
	'寧': 14, '欣': 8, '佳': 8, '婷': 12, '雪': 11, '琳': 13, '晶': 12, '丹': 4,
	'阳': 17, '陽': 17, '鹏': 19, '鵬': 19, '飞': 9, '飛': 9, '云': 12, '雲': 12,
	'峰': 10, '建': 9, '国': 11, '國': 11, '志': 7, '海': 11, '春': 9, '兰': 23,
	'蘭': 23, '晨': 11, '思': 9, '雨': 8, '子': 3, '涵': 12, '轩': 10, '軒': 10,
	'睿': 14, '博': 12, '怡': 9, '悦': 11, '悅': 11, '梓': 11, '萱': 15, '诗': 13,
	'詩': 13, '嘉': 14, '琪': 13, '昊': 8, '天': 4, '小': 3, '大': 3, '山': 3, '中': 4,
	'心': 4, '月': 4, '日': 4, '水': 4, '火': 4, '木': 4, '土': 3, '东': 8, '東': 8,
	'德': 15, '福': 14, '永': 5, '光': 6, '家': 10, '新': 13, '美': 9, '乐': 15,
	'樂': 15, '荣': 14, '榮': 14, '庆': 15, '慶': 15, '祥': 11, '瑞': 14, '婉': 11,
	'慧': 15, '晓': 16, '曉': 16, '倩': 10, '颖': 16, '穎': 16, '莉': 13, '玲': 10,
	'蕾': 19, '薇': 19, '露': 20, '娇': 15, '嬌': 15, '爱': 13, '愛': 13, '泽': 17,
	'澤': 17, '宏': 7, '毅': 15, '诚': 14, '誠': 14, '信': 9, '仁': 4, '义': 13,
	'義': 13, '礼': 18, '禮': 18, '智': 12, '秋': 9, '冬': 5,
}
